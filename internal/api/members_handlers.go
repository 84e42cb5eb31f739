package api

import (
	"github.com/gin-gonic/gin"

	"sacco-backend/internal/models"
)

type memberRequest struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	DateJoined string `json:"dateJoined"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

type memberUpdateRequest struct {
	FullName   *string `json:"fullName"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	DateJoined *string `json:"dateJoined"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
}

// GetMembers returns all members
func GetMembers(c *gin.Context) {
	respondOK(c, getStore(c).Members())
}

// GetMember returns one member by ID
func GetMember(c *gin.Context) {
	member, err := getStore(c).MemberByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, member)
}

// CreateMember adds a new member
func CreateMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	input := models.MemberInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Status:   models.MemberStatus(req.Status),
		Notes:    req.Notes,
	}
	if req.DateJoined != "" {
		dateJoined, err := parseDate(req.DateJoined)
		if err != nil {
			respondBadRequest(c, "Invalid dateJoined, expected YYYY-MM-DD")
			return
		}
		input.DateJoined = dateJoined
	}

	member, err := getStore(c).AddMember(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, member)
}

// UpdateMember applies a partial update to a member
func UpdateMember(c *gin.Context) {
	var req memberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	dateJoined, err := parseDatePtr(req.DateJoined)
	if err != nil {
		respondBadRequest(c, "Invalid dateJoined, expected YYYY-MM-DD")
		return
	}

	update := models.MemberUpdate{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		DateJoined: dateJoined,
		Notes:      req.Notes,
	}
	if req.Status != nil {
		status := models.MemberStatus(*req.Status)
		update.Status = &status
	}

	member, err := getStore(c).UpdateMember(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, member)
}

// DeleteMember removes a member without active loans
func DeleteMember(c *gin.Context) {
	if err := getStore(c).DeleteMember(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// GetMemberLoans returns all loans for one member
func GetMemberLoans(c *gin.Context) {
	respondOK(c, getStore(c).LoansByMember(c.Param("id")))
}

// GetMemberStats returns lending statistics for one member
func GetMemberStats(c *gin.Context) {
	stats, err := getStore(c).MemberStats(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// SearchMembers returns members matching the q parameter by name or ID
func SearchMembers(c *gin.Context) {
	respondOK(c, getStore(c).SearchMembers(c.Query("q")))
}
