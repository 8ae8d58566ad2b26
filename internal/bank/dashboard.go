package bank

import (
	"fmt"
	"log"
	"time"

	"github.com/arpandhara/mini-banking-system/internal/models"
)

// DashboardData is the aggregate read model behind /api/dashboard-data.
// Amounts are cents; the handler formats them for the wire.
type DashboardData struct {
	Username           string
	BalanceCent        int64
	MonthlyIncomeCent  int64
	MonthlyOutcomeCent int64
	Transactions       []models.Transaction
	LastSavings        []models.SavingGoal
	LastContacts       []models.Contact
	AccountNumber      uint
}

// TransactionsSummary is the read model behind /api/transactions-data.
type TransactionsSummary struct {
	Username         string
	BalanceCent      int64
	TotalSavingsCent int64
	TotalIncomeCent  int64
	TotalOutcomeCent int64
	Transactions     []models.Transaction
}

// Dashboard aggregates the owner's balance, this-month income/outcome,
// full history, and the four most recent goals and contacts. Transactions
// with unparseable dates are logged and skipped; old data must never keep
// the dashboard from rendering.
func (s *Service) Dashboard(userID uint) (*DashboardData, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	now := time.Now()
	var income, outcome int64
	for i := range txs {
		txDate, err := time.Parse("2006-01-02", txs[i].Date)
		if err != nil {
			log.Printf("dashboard: skip transaction %s with bad date %q: %v",
				txs[i].ID, txs[i].Date, err)
			continue
		}
		if txDate.Month() != now.Month() || txDate.Year() != now.Year() {
			continue
		}
		if txs[i].AmountCent > 0 {
			income += txs[i].AmountCent
		} else {
			outcome += txs[i].AmountCent
		}
	}

	var goals []models.SavingGoal
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(4).
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	var contacts []models.Contact
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(4).
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return &DashboardData{
		Username:           user.Username,
		BalanceCent:        user.Balance,
		MonthlyIncomeCent:  income,
		MonthlyOutcomeCent: outcome,
		Transactions:       txs,
		LastSavings:        goals,
		LastContacts:       contacts,
		AccountNumber:      user.ID,
	}, nil
}

// Summary computes lifetime totals across the owner's whole history plus
// the sum currently parked in savings goals.
func (s *Service) Summary(userID uint) (*TransactionsSummary, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var income, outcome int64
	for i := range txs {
		if txs[i].AmountCent > 0 {
			income += txs[i].AmountCent
		} else {
			outcome += txs[i].AmountCent
		}
	}

	var totalSavings int64
	if err := s.db.Model(&models.SavingGoal{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(saved_cent), 0)").
		Scan(&totalSavings).Error; err != nil {
		return nil, fmt.Errorf("sum savings: %w", err)
	}

	return &TransactionsSummary{
		Username:         user.Username,
		BalanceCent:      user.Balance,
		TotalSavingsCent: totalSavings,
		TotalIncomeCent:  income,
		TotalOutcomeCent: outcome,
		Transactions:     txs,
	}, nil
}
