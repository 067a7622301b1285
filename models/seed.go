package models

import "time"

// Bootstrap dataset used to seed a fresh installation. Returned slices are
// fresh copies so callers can mutate them freely.

func SeedServices() []Service {
	return []Service{
		{
			ID:          "1",
			Name:        "Classic Cut",
			Description: "Traditional haircut with scissors and clippers",
			Price:       35,
			Duration:    30,
			Category:    CategoryCut,
			Photo:       "assets/service-images/classic_haircut_style.png",
		},
		{
			ID:          "2",
			Name:        "Fade",
			Description: "Modern fade haircut with precision blending",
			Price:       40,
			Duration:    45,
			Category:    CategoryCut,
			Photo:       "assets/service-images/modern_fade_haircut.png",
		},
		{
			ID:          "3",
			Name:        "Beard Trim",
			Description: "Professional beard shaping and trimming",
			Price:       20,
			Duration:    15,
			Category:    CategoryBeard,
			Photo:       "assets/service-images/professional_beard_trim.png",
		},
		{
			ID:          "4",
			Name:        "Kids Cut",
			Description: "Haircut for children 12 and under",
			Price:       25,
			Duration:    25,
			Category:    CategoryKids,
			Photo:       "assets/service-images/kids_haircut_style.png",
		},
	}
}

func SeedCustomers() []Customer {
	return []Customer{
		{
			ID:                "1",
			Name:              "Michael Johnson",
			Phone:             "(555) 123-4567",
			Email:             "michael.j@email.com",
			TotalVisits:       12,
			LastVisit:         "2024-11-20",
			PreferredServices: []string{"1", "3"},
		},
		{
			ID:                "2",
			Name:              "David Smith",
			Phone:             "(555) 234-5678",
			Email:             "david.s@email.com",
			TotalVisits:       8,
			LastVisit:         "2024-11-18",
			PreferredServices: []string{"2"},
		},
		{
			ID:                "3",
			Name:              "Robert Williams",
			Phone:             "(555) 345-6789",
			TotalVisits:       15,
			LastVisit:         "2024-11-22",
			PreferredServices: []string{"1"},
		},
	}
}

func SeedAppointments() []Appointment {
	today := time.Now().Format("2006-01-02")
	return []Appointment{
		{ID: "1", CustomerID: "1", ServiceID: "1", Date: today, Time: "09:00", Status: StatusConfirmed},
		{ID: "2", CustomerID: "2", ServiceID: "2", Date: today, Time: "10:00", Status: StatusConfirmed},
		{ID: "3", CustomerID: "3", ServiceID: "3", Date: today, Time: "14:00", Status: StatusPending},
	}
}

func SeedQueue() []QueueCustomer {
	return []QueueCustomer{
		{ID: "q1", Name: "James Brown", ServiceID: "2", AddedAt: time.Now().UTC(), EstimatedWaitTime: 15},
	}
}
