package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler fronts the ledger engine.
type PaymentHandler struct {
	Svc *bank.Service
}

func NewPaymentHandler(svc *bank.Service) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

type processPaymentReq struct {
	Password        string          `json:"password" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type" binding:"required"`
	Note            string          `json:"note" binding:"max=255"`

	// type-specific fields
	RecipientAccount json.Number `json:"recipient_account"`
	SavingID         string      `json:"saving_id"`
}

// ProcessPayment executes deposit / withdraw / bank_transfer /
// saving_deposit for the logged-in user. The password travels with the
// request and is re-verified by the engine.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req processPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	amountCent, err := util.ParseAmountCent(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	payment := bank.PaymentRequest{
		Kind:       req.TransactionType,
		AmountCent: amountCent,
		Note:       req.Note,
		SavingID:   req.SavingID,
	}

	if req.TransactionType == bank.PayBankTransfer {
		recipientID, err := strconv.ParseUint(req.RecipientAccount.String(), 10, 32)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid recipient account")
			return
		}
		payment.RecipientID = uint(recipientID)
	}

	newBalance, err := h.Svc.ProcessPayment(user.ID, req.Password, payment)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message":     "Transaction successful!",
		"new_balance": util.CentToFloat(newBalance),
	})
}
