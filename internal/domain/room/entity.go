package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName       = errors.New("room name is required")
	ErrNameTooLong     = errors.New("room name too long")
	ErrEmptyLocation   = errors.New("room location is required")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

const (
	MaxNameLength = 100
	MaxCapacity   = 1000
)

// Room is a bookable conference room. Name uniqueness (case-insensitive) is
// enforced by the storage layer.
type Room struct {
	id          int64
	name        string
	location    string
	capacity    int
	description *string
	amenities   []string
	imageURLs   []string
}

func NewRoom(name, location string, capacity int, description *string, amenities, imageURLs []string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		name:        name,
		location:    strings.TrimSpace(location),
		capacity:    capacity,
		description: description,
		amenities:   amenities,
		imageURLs:   imageURLs,
	}, nil
}

func ReconstructRoom(id int64, name, location string, capacity int, description *string, amenities, imageURLs []string) *Room {
	return &Room{
		id:          id,
		name:        name,
		location:    location,
		capacity:    capacity,
		description: description,
		amenities:   amenities,
		imageURLs:   imageURLs,
	}
}

func (r *Room) ID() int64            { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Location() string     { return r.location }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Description() *string { return r.description }
func (r *Room) Amenities() []string  { return r.amenities }
func (r *Room) ImageURLs() []string  { return r.imageURLs }
