package handler

import (
	"fmt"

	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only aggregations.
type DashboardHandler struct {
	Svc        *bank.Service
	CardPrefix string
}

func NewDashboardHandler(svc *bank.Service, cardPrefix string) *DashboardHandler {
	return &DashboardHandler{Svc: svc, CardPrefix: cardPrefix}
}

// DashboardData returns the landing-page aggregate: balance, this-month
// income/outcome, full history, last four goals and contacts.
func (h *DashboardHandler) DashboardData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	data, err := h.Svc.Dashboard(user.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{
		"username":          data.Username,
		"total_balance":     util.CentToFloat(data.BalanceCent),
		"monthly_income":    util.CentToFloat(data.MonthlyIncomeCent),
		"monthly_outcome":   util.CentToFloat(data.MonthlyOutcomeCent),
		"all_transactions":  toTransactionList(data.Transactions),
		"last_4_savings":    toSavingList(data.LastSavings),
		"last_4_people":     toContactList(data.LastContacts, h.CardPrefix),
		"userAccountNumber": fmt.Sprintf("%d", data.AccountNumber),
	})
}

// TransactionsData returns lifetime totals plus the full history.
func (h *DashboardHandler) TransactionsData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.Svc.Summary(user.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{
		"username":      summary.Username,
		"total_balance": util.CentToFloat(summary.BalanceCent),
		"total_savings": util.CentToFloat(summary.TotalSavingsCent),
		"total_income":  util.CentToFloat(summary.TotalIncomeCent),
		"total_outcome": util.CentToFloat(summary.TotalOutcomeCent),
		"transactions":  toTransactionList(summary.Transactions),
	})
}
