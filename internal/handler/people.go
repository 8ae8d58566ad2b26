package handler

import (
	"net/http"
	"strings"

	"github.com/arpandhara/mini-banking-system/internal/bank"
	"github.com/arpandhara/mini-banking-system/internal/util"

	"github.com/gin-gonic/gin"
)

// PeopleHandler owns the contacts endpoints.
type PeopleHandler struct {
	Svc        *bank.Service
	CardPrefix string
}

func NewPeopleHandler(svc *bank.Service, cardPrefix string) *PeopleHandler {
	return &PeopleHandler{Svc: svc, CardPrefix: cardPrefix}
}

// ListPeople returns the owner's contacts, newest first, each with the
// derived full account number.
func (h *PeopleHandler) ListPeople(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	contacts, err := h.Svc.ListContacts(user.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{"people": toContactList(contacts, h.CardPrefix)})
}

type createContactReq struct {
	ContactAccount  uint   `json:"contactAccount" binding:"required"`
	ContactName     string `json:"contactName" binding:"required,max=64"`
	ContactRelation string `json:"contactRelation" binding:"max=32"`
}

func (h *PeopleHandler) CreatePerson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "contactAccount and contactName are required")
		return
	}

	contact, err := h.Svc.AddContact(user.ID, req.ContactAccount,
		strings.TrimSpace(req.ContactName), req.ContactRelation)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Created(c, util.Response{"person": toContactResp(contact, h.CardPrefix)})
}

type updateContactReq struct {
	ContactName     string `json:"contactName" binding:"required,max=64"`
	ContactRelation string `json:"contactRelation" binding:"max=32"`
}

func (h *PeopleHandler) UpdatePerson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	contactID := c.Param("id")

	var req updateContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "contactName is required")
		return
	}

	contact, err := h.Svc.UpdateContact(user.ID, contactID,
		strings.TrimSpace(req.ContactName), req.ContactRelation)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{"person": toContactResp(contact, h.CardPrefix)})
}

func (h *PeopleHandler) DeletePerson(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Svc.RemoveContact(user.ID, c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	util.Success(c, util.Response{"message": "Deleted"})
}
