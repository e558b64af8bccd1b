package catalog

func seedProperties() []Property {
	return []Property{
		{
			ID:          1,
			Title:       "Luxury Beach Villa",
			Location:    "Malibu, California",
			Price:       450,
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&q=80&w=1000",
			Description: "Experience luxury living in this stunning beachfront villa. Wake up to panoramic ocean views and fall asleep to the sound of waves. This modern villa features 4 bedrooms, a private pool, and direct beach access.",
			Amenities:   []string{"Pool", "Beach Access", "WiFi", "Kitchen", "4 Bedrooms", "3 Bathrooms", "Ocean View", "Air Conditioning"},
			Host: Host{
				Name:         "Sarah Johnson",
				Rating:       4.95,
				ResponseTime: "within an hour",
				Image:        "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200",
			},
		},
		{
			ID:          2,
			Title:       "Mountain Retreat Cabin",
			Location:    "Aspen, Colorado",
			Price:       275,
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1518780664697-55e3ad937233?auto=format&fit=crop&q=80&w=1000",
			Description: "Escape to this cozy mountain cabin surrounded by nature. Perfect for skiing in winter and hiking in summer. Features a rustic interior with modern amenities and a hot tub overlooking the mountains.",
			Amenities:   []string{"Hot Tub", "Fireplace", "WiFi", "Kitchen", "2 Bedrooms", "2 Bathrooms", "Mountain View", "Heating"},
			Host: Host{
				Name:         "Mike Anderson",
				Rating:       4.88,
				ResponseTime: "within a day",
				Image:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=200",
			},
		},
		{
			ID:          3,
			Title:       "Modern City Loft",
			Location:    "New York City, NY",
			Price:       320,
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&q=80&w=1000",
			Description: "Stay in the heart of Manhattan in this stylish loft apartment. High ceilings, exposed brick, and contemporary furnishings create the perfect urban retreat. Walking distance to major attractions.",
			Amenities:   []string{"City View", "WiFi", "Kitchen", "1 Bedroom", "1 Bathroom", "Air Conditioning", "Gym Access", "Doorman"},
			Host: Host{
				Name:         "Emily Chen",
				Rating:       4.92,
				ResponseTime: "within hours",
				Image:        "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&q=80&w=200",
			},
		},
	}
}
