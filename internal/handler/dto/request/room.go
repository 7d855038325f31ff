package request

import (
	"roombook/internal/usecase/commands"
)

type RoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
}

func (r RoomRequest) ToParams() commands.RoomParams {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	imageURLs := r.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return commands.RoomParams{
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Description: r.Description,
		Amenities:   amenities,
		ImageURLs:   imageURLs,
	}
}
