package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SavingsHandler owns the savings-goal lifecycle endpoints.
type SavingsHandler struct {
	Svc *bank.Service
}

func NewSavingsHandler(svc *bank.Service) *SavingsHandler {
	return &SavingsHandler{Svc: svc}
}

// ListSavings returns the owner's goals, newest first.
func (h *SavingsHandler) ListSavings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	goals, err := h.Svc.ListGoals(user.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{"savings": toSavingList(goals)})
}

type createSavingReq struct {
	ItemName     string          `json:"itemName" binding:"required,max=64"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	ColorCode    string          `json:"colorCode" binding:"max=16"`
	Description  string          `json:"description" binding:"max=255"`
}

func (h *SavingsHandler) CreateSaving(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createSavingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid target amount")
		return
	}

	targetCent, err := util.ParseAmountCent(req.TargetAmount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid target amount")
		return
	}

	goal, err := h.Svc.CreateGoal(user.ID, strings.TrimSpace(req.ItemName), targetCent, req.ColorCode, req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Created(c, util.Response{"saving": toSavingResp(goal)})
}

type deleteSavingReq struct {
	SavingsID string `json:"savingsId" binding:"required"`
}

// DeleteSaving refunds the goal's saved amount to the balance and removes
// the goal. Accepts the id with or without its sid_ prefix, as older
// frontends send the bare suffix.
func (h *SavingsHandler) DeleteSaving(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req deleteSavingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "savingsId is required")
		return
	}

	goalID := req.SavingsID
	if !strings.HasPrefix(goalID, "sid_") {
		goalID = "sid_" + goalID
	}

	refunded, err := h.Svc.DeleteGoal(user.ID, goalID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message":  fmt.Sprintf("Deleted. Refunded: %s", util.FormatCent(refunded)),
		"refunded": util.CentToFloat(refunded),
	})
}
