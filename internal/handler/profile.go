package handler

import (
	"errors"
	"net/http"

	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves account details and password changes.
type ProfileHandler struct {
	Svc *bank.Service
}

func NewProfileHandler(svc *bank.Service) *ProfileHandler {
	return &ProfileHandler{Svc: svc}
}

// ProfileData returns the logged-in user's record. The credential hash
// never leaves the server.
func (h *ProfileHandler) ProfileData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.Svc.Profile(user.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"user_id":     profile.ID,
			"username":    profile.Username,
			"balance":     util.CentToFloat(profile.Balance),
			"age":         profile.Age,
			"gender":      profile.Gender,
			"phoneNumber": profile.PhoneNumber,
			"created_at":  profile.CreatedAt,
		},
	})
}

type changePasswordReq struct {
	OldPassword        string `json:"oldPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=6,max=64"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required"`
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "All password fields are required")
		return
	}
	if req.NewPassword != req.ConfirmNewPassword {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Passwords do not match")
		return
	}

	if err := h.Svc.ChangePassword(user.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, bank.ErrInvalidCredential) {
			util.Error(c, http.StatusForbidden, util.CodeForbidden, "Incorrect old password")
			return
		}
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{"message": "Password updated"})
}
