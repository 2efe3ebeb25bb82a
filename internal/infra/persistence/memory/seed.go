package memory

import "chamabook/internal/domain/entity"

// seed loads the fixed sample data: one settings record, one admin, three
// members, and two FAQs. Called once at construction.
func (s *Store) seed() {
	s.settings = &entity.Settings{
		ID:                                 "settings_01",
		TargetAmount:                       500000,
		TargetPeriodMonths:                 6,
		DailyMinimum:                       50,
		GlobalInterestRate:                 5,
		RequirePasswordForSensitiveActions: false,
	}

	s.admins.put("admin_01", entity.Admin{
		ID:       "admin_01",
		Name:     "Admin User",
		Email:    "admin@example.com",
		Phone:    "+254700000000",
		Password: "admin123",
	})

	members := []entity.Member{
		{
			ID:          "m_01",
			Name:        "Jane Doe",
			Phone:       "+254712345678",
			Email:       "jane@example.com",
			JoinedAt:    "2025-11-01",
			Reason:      "School fees",
			TotalSaved:  12300,
			Outstanding: 500,
		},
		{
			ID:          "m_02",
			Name:        "John Smith",
			Phone:       "+254723456789",
			Email:       "john@example.com",
			JoinedAt:    "2025-10-15",
			Reason:      "Business capital",
			TotalSaved:  8500,
			Outstanding: 0,
		},
		{
			ID:          "m_03",
			Name:        "Mary Johnson",
			Phone:       "+254734567890",
			Email:       "mary@example.com",
			JoinedAt:    "2025-09-20",
			Reason:      "Emergency fund",
			TotalSaved:  15200,
			Outstanding: 1000,
		},
	}
	for _, m := range members {
		s.members.put(m.ID, m)
	}

	faqs := []entity.FAQ{
		{
			ID:       "faq_01",
			Question: "How do I make a daily deposit?",
			Answer:   "Navigate to the Funds page, select your name from the dropdown, enter the amount, and click the Deposit button.",
		},
		{
			ID:       "faq_02",
			Question: "What is the minimum daily saving amount?",
			Answer:   "The minimum daily saving amount is KES 50 per day as set by the admin.",
		},
	}
	for _, f := range faqs {
		s.faqs.put(f.ID, f)
	}
}
