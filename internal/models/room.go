package models

// Room is static catalog data: defined once at startup, never mutated.
type Room struct {
	RoomType   string  `yaml:"room_type" json:"roomType"`
	RoomRate   float64 `yaml:"room_rate" json:"roomRate"`
	RoomNumber int     `yaml:"room_number" json:"roomNumber"`
}

// DefaultCatalog mirrors the rooms the hotel opened with. Used when the
// config file does not define its own catalog.
func DefaultCatalog() []Room {
	return []Room{
		{RoomType: "Single", RoomRate: 2500, RoomNumber: 101},
		{RoomType: "Single", RoomRate: 2500, RoomNumber: 102},
		{RoomType: "Single", RoomRate: 2500, RoomNumber: 103},
		{RoomType: "Double", RoomRate: 5000, RoomNumber: 201},
		{RoomType: "Double", RoomRate: 5000, RoomNumber: 202},
		{RoomType: "Double", RoomRate: 5000, RoomNumber: 203},
		{RoomType: "Suite", RoomRate: 8000, RoomNumber: 301},
		{RoomType: "Suite", RoomRate: 8000, RoomNumber: 302},
		{RoomType: "Suite", RoomRate: 8000, RoomNumber: 303},
		{RoomType: "Deluxe", RoomRate: 12000, RoomNumber: 401},
		{RoomType: "Deluxe", RoomRate: 12000, RoomNumber: 402},
		{RoomType: "Deluxe", RoomRate: 12000, RoomNumber: 403},
	}
}

// RoomTypes returns the distinct room types in catalog order.
func RoomTypes(catalog []Room) []string {
	seen := make(map[string]bool)
	var types []string
	for _, room := range catalog {
		if !seen[room.RoomType] {
			seen[room.RoomType] = true
			types = append(types, room.RoomType)
		}
	}
	return types
}

// FindRoom looks a room up by number. The second result reports whether the
// number exists in the catalog.
func FindRoom(catalog []Room, roomNumber int) (Room, bool) {
	for _, room := range catalog {
		if room.RoomNumber == roomNumber {
			return room, true
		}
	}
	return Room{}, false
}
