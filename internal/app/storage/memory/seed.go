package memory

import (
	"time"

	"github.com/perkhub/dashboard/internal/app/domain/benefit"
	"github.com/perkhub/dashboard/internal/app/domain/profile"
	"github.com/perkhub/dashboard/internal/app/domain/rewards"
)

// Seed is the initial dashboard state a store is created from.
type Seed struct {
	Profile  profile.UserProfile
	Benefits []benefit.Benefit
	Ledger   rewards.Ledger
}

// DefaultSeed returns the stock single-user dashboard data: one profile, six
// catalog benefits, and a ledger with two recent transactions.
func DefaultSeed() Seed {
	now := time.Now().UTC()

	return Seed{
		Profile: profile.UserProfile{
			ID:              1,
			Name:            "Alex Johnson",
			Avatar:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
			Level:           7,
			XP:              2450,
			ProgressPercent: 73,
			XPToNext:        550,
			TotalPoints:     12450,
			RedeemedPoints:  8200,
			MonthlyPoints:   1250,
		},
		Benefits: []benefit.Benefit{
			{
				ID:          1,
				Title:       "20% Cashback",
				Description: "Get 20% cashback on all online purchases up to ₹500",
				Icon:        "fas fa-percentage",
				Category:    "cashback",
				Status:      benefit.StatusActive,
				CTAText:     "Claim Now",
				Value:       "20%",
				CreatedAt:   now,
			},
			{
				ID:          2,
				Title:       "Travel Discounts",
				Description: "Exclusive 15% off on flight bookings and hotel stays",
				Icon:        "fas fa-plane",
				Category:    "travel",
				Status:      benefit.StatusPremium,
				CTAText:     "View Offers",
				Value:       "15%",
				CreatedAt:   now,
			},
			{
				ID:          3,
				Title:       "Food Vouchers",
				Description: "₹200 vouchers for Zomato, Swiggy, and other food apps",
				Icon:        "fas fa-utensils",
				Category:    "food",
				Status:      benefit.StatusLimited,
				CTAText:     "Redeem",
				Value:       "₹200",
				CreatedAt:   now,
			},
			{
				ID:          4,
				Title:       "Shopping Rewards",
				Description: "Earn 2X points on all e-commerce purchases this month",
				Icon:        "fas fa-shopping-bag",
				Category:    "shopping",
				Status:      benefit.StatusActive,
				CTAText:     "Activate",
				Value:       "2X",
				CreatedAt:   now,
			},
			{
				ID:          5,
				Title:       "Entertainment",
				Description: "Free Netflix and Spotify subscriptions for 3 months",
				Icon:        "fas fa-film",
				Category:    "entertainment",
				Status:      benefit.StatusNew,
				CTAText:     "Get Access",
				Value:       "3 months",
				CreatedAt:   now,
			},
			{
				ID:          6,
				Title:       "Health Benefits",
				Description: "50% discount on health checkups and gym memberships",
				Icon:        "fas fa-heart",
				Category:    "health",
				Status:      benefit.StatusHealth,
				CTAText:     "Book Now",
				Value:       "50%",
				CreatedAt:   now,
			},
		},
		Ledger: rewards.Ledger{
			TotalPoints:     12450,
			AvailablePoints: 4250,
			RedeemedPoints:  8200,
			MonthlyPoints:   1250,
			ProgressPercent: 70,
			Transactions: []rewards.Transaction{
				rewards.NewTransaction(rewards.KindEarned, 500, "Cashback from online purchase", now.Add(-24*time.Hour)),
				rewards.NewTransaction(rewards.KindRedeemed, 1000, "Redeemed for food voucher", now.Add(-48*time.Hour)),
			},
		},
	}
}
