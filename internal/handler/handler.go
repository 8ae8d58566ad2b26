// Package handler exposes the HTTP surface. Handlers validate input, call
// into the bank service, and translate domain errors to status codes; no
// business rule lives here.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/models"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the context. A missing
// or mistyped value writes the 401 itself and returns false.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in")
		return nil, false
	}
	return user, true
}

// writeDomainError maps bank package errors onto HTTP status codes.
// Domain error strings are client-safe; anything unrecognized is an
// internal error and gets a generic message.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrInvalidTarget),
		errors.Is(err, bank.ErrSelfTransfer),
		errors.Is(err, bank.ErrSelfContact),
		errors.Is(err, bank.ErrInvalidPaymentKind),
		errors.Is(err, bank.ErrInsufficientFunds):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, bank.ErrInvalidCredential):
		util.Error(c, http.StatusForbidden, util.CodeForbidden, err.Error())
	case errors.Is(err, bank.ErrAccountLocked):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, err.Error())
	case errors.Is(err, bank.ErrUserNotFound),
		errors.Is(err, bank.ErrRecipientNotFound),
		errors.Is(err, bank.ErrGoalNotFound),
		errors.Is(err, bank.ErrContactNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	case errors.Is(err, bank.ErrDuplicateContact),
		errors.Is(err, bank.ErrDuplicatePhone):
		util.Error(c, http.StatusConflict, util.CodeConflict, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Internal error, please retry")
	}
}

// ---------- wire representations ----------

type transactionResp struct {
	TransactionID string  `json:"transaction_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		TransactionID: t.ID,
		Name:          t.Name,
		Type:          t.Type,
		Amount:        util.CentToFloat(t.AmountCent),
		Date:          t.Date,
		Description:   t.Description,
		Status:        t.Status,
	}
}

func toTransactionList(txs []models.Transaction) []transactionResp {
	out := make([]transactionResp, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResp(&txs[i]))
	}
	return out
}

type savingResp struct {
	SavingID     string  `json:"saving_id"`
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	SavedAmount  float64 `json:"saved_amount"`
	ColorCode    string  `json:"color_code"`
	Description  string  `json:"description"`
	CreatedAt    string  `json:"created_at"`
}

func toSavingResp(g *models.SavingGoal) savingResp {
	return savingResp{
		SavingID:     g.ID,
		Name:         g.Name,
		TargetAmount: util.CentToFloat(g.TargetCent),
		SavedAmount:  util.CentToFloat(g.SavedCent),
		ColorCode:    g.ColorCode,
		Description:  g.Description,
		CreatedAt:    g.CreatedDate,
	}
}

func toSavingList(goals []models.SavingGoal) []savingResp {
	out := make([]savingResp, 0, len(goals))
	for i := range goals {
		out = append(out, toSavingResp(&goals[i]))
	}
	return out
}

type contactResp struct {
	PeopleID          string `json:"people_id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	AccountID         uint   `json:"account_id"`
	Relation          string `json:"relation"`
	FullAccountNumber string `json:"full_account_number"`
}

// toContactResp derives the display account number from the configured
// institution prefix; it is presentation state, never stored.
func toContactResp(p *models.Contact, cardPrefix string) contactResp {
	return contactResp{
		PeopleID:          p.ID,
		Name:              p.Name,
		Phone:             p.Phone,
		AccountID:         p.AccountID,
		Relation:          p.Relation,
		FullAccountNumber: fmt.Sprintf("%s%d", cardPrefix, p.AccountID),
	}
}

func toContactList(contacts []models.Contact, cardPrefix string) []contactResp {
	out := make([]contactResp, 0, len(contacts))
	for i := range contacts {
		out = append(out, toContactResp(&contacts[i], cardPrefix))
	}
	return out
}
