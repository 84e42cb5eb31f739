package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"sacco-backend/internal/ledger"
	"sacco-backend/internal/models"
)

// stubGateway keeps snapshots in memory so handler tests run without a database
type stubGateway struct {
	snapshot *models.Snapshot
}

func (g *stubGateway) Load() (*models.Snapshot, error) { return g.snapshot, nil }
func (g *stubGateway) Save(s *models.Snapshot) error   { g.snapshot = s; return nil }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *ledger.Store
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.store = ledger.Open(&stubGateway{}, &models.Snapshot{Settings: models.DefaultSettings()}, "")

	s.router = gin.New()
	s.router.Use(StoreMiddleware(s.store))
	RegisterRoutes(s.router)
}

func (s *HandlersTestSuite) request(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	var resp envelope
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	return recorder, resp
}

func (s *HandlersTestSuite) createMember() *models.Member {
	member, err := s.store.AddMember(models.MemberInput{
		FullName:   "Joseph Ngamau",
		DateJoined: mustParseDate(s.T(), "2024-01-15"),
	})
	s.Require().NoError(err)
	return member
}

func (s *HandlersTestSuite) createLoan(memberID string) *models.Loan {
	loan, err := s.store.AddLoan(models.LoanInput{
		MemberID:        memberID,
		Amount:          10000,
		InterestRate:    10,
		IssueDate:       mustParseDate(s.T(), "2024-03-01"),
		RepaymentPeriod: 12,
	})
	s.Require().NoError(err)
	return loan
}

func mustParseDate(t *testing.T, value string) (parsed time.Time) {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return parsed
}

func (s *HandlersTestSuite) TestCreateMember() {
	recorder, resp := s.request(http.MethodPost, "/api/v1/members", gin.H{
		"fullName":   "Joseph Ngamau",
		"phone":      "+254712345678",
		"dateJoined": "2024-01-15",
	})

	s.Equal(http.StatusCreated, recorder.Code)
	s.True(resp.Success)

	var member models.Member
	s.Require().NoError(json.Unmarshal(resp.Data, &member))
	s.Equal("MEM001", member.ID)
	s.Equal(models.MemberStatusActive, member.Status)
}

func (s *HandlersTestSuite) TestCreateMemberMissingName() {
	recorder, resp := s.request(http.MethodPost, "/api/v1/members", gin.H{
		"dateJoined": "2024-01-15",
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.False(resp.Success)
	s.Contains(resp.Error, "full name")
}

func (s *HandlersTestSuite) TestCreateMemberBadDate() {
	recorder, _ := s.request(http.MethodPost, "/api/v1/members", gin.H{
		"fullName":   "Joseph Ngamau",
		"dateJoined": "15/01/2024",
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlersTestSuite) TestGetMemberNotFound() {
	recorder, resp := s.request(http.MethodGet, "/api/v1/members/MEM999", nil)

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Contains(resp.Error, "MEM999")
}

func (s *HandlersTestSuite) TestUpdateMemberPartial() {
	member := s.createMember()

	recorder, resp := s.request(http.MethodPut, "/api/v1/members/"+member.ID, gin.H{
		"phone": "+254700000001",
	})

	s.Equal(http.StatusOK, recorder.Code)
	var updated models.Member
	s.Require().NoError(json.Unmarshal(resp.Data, &updated))
	s.Equal("+254700000001", updated.Phone)
	s.Equal("Joseph Ngamau", updated.FullName)
}

func (s *HandlersTestSuite) TestDeleteMemberWithActiveLoan() {
	member := s.createMember()
	s.createLoan(member.ID)

	recorder, resp := s.request(http.MethodDelete, "/api/v1/members/"+member.ID, nil)

	s.Equal(http.StatusConflict, recorder.Code)
	s.Contains(resp.Error, "active loans")
}

func (s *HandlersTestSuite) TestSearchMembers() {
	s.createMember()

	recorder, resp := s.request(http.MethodGet, "/api/v1/members/search?q=ngamau", nil)

	s.Equal(http.StatusOK, recorder.Code)
	var members []*models.Member
	s.Require().NoError(json.Unmarshal(resp.Data, &members))
	s.Len(members, 1)
}

func (s *HandlersTestSuite) TestCreateLoan() {
	member := s.createMember()

	recorder, resp := s.request(http.MethodPost, "/api/v1/loans", gin.H{
		"memberId":        member.ID,
		"amount":          10000,
		"interestRate":    10,
		"issueDate":       "2024-03-01",
		"repaymentPeriod": 12,
	})

	s.Equal(http.StatusCreated, recorder.Code)
	var loan models.Loan
	s.Require().NoError(json.Unmarshal(resp.Data, &loan))
	s.Equal("LN0001", loan.ID)
	s.Equal(11000.0, loan.TotalRepayable)
	s.Equal(11000.0, loan.PendingBalance)
}

func (s *HandlersTestSuite) TestCreateLoanForUnknownMember() {
	recorder, _ := s.request(http.MethodPost, "/api/v1/loans", gin.H{
		"memberId":        "MEM999",
		"amount":          10000,
		"interestRate":    10,
		"issueDate":       "2024-03-01",
		"repaymentPeriod": 12,
	})

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlersTestSuite) TestLoanSummaryRouteBeatsIDLookup() {
	member := s.createMember()
	s.createLoan(member.ID)

	recorder, resp := s.request(http.MethodGet, "/api/v1/loans/summary", nil)

	s.Equal(http.StatusOK, recorder.Code)
	var summary models.LoanSummary
	s.Require().NoError(json.Unmarshal(resp.Data, &summary))
	s.Equal(1, summary.ActiveLoans)
	s.Equal(10000.0, summary.TotalDisbursed)
}

func (s *HandlersTestSuite) TestRecordPaymentCompletesLoan() {
	member := s.createMember()
	loan := s.createLoan(member.ID)

	recorder, _ := s.request(http.MethodPost, "/api/v1/payments", gin.H{
		"loanId":      loan.ID,
		"amount":      11000,
		"paymentDate": "2024-06-10",
		"method":      "M-Pesa",
	})
	s.Equal(http.StatusCreated, recorder.Code)

	_, resp := s.request(http.MethodGet, "/api/v1/loans/"+loan.ID, nil)
	var updated models.Loan
	s.Require().NoError(json.Unmarshal(resp.Data, &updated))
	s.Equal(models.LoanStatusCompleted, updated.Status)
	s.Equal(0.0, updated.PendingBalance)
	s.Require().NotNil(updated.CompletedDate)
}

func (s *HandlersTestSuite) TestRecordPaymentOverpayment() {
	member := s.createMember()
	loan := s.createLoan(member.ID)

	recorder, resp := s.request(http.MethodPost, "/api/v1/payments", gin.H{
		"loanId": loan.ID,
		"amount": 12000,
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(resp.Error, "pending balance")
}

func (s *HandlersTestSuite) TestDashboardAnalytics() {
	member := s.createMember()
	s.createLoan(member.ID)

	recorder, resp := s.request(http.MethodGet, "/api/v1/dashboard/analytics", nil)

	s.Equal(http.StatusOK, recorder.Code)
	var analytics models.DashboardAnalytics
	s.Require().NoError(json.Unmarshal(resp.Data, &analytics))
	s.Equal(1, analytics.TotalMembers)
	s.Equal(1, analytics.ActiveLoans)
	s.Equal(10000.0, analytics.TotalDisbursed)
}

func (s *HandlersTestSuite) TestActivityLogsLimit() {
	s.createMember()

	recorder, resp := s.request(http.MethodGet, "/api/v1/activity-logs?limit=1", nil)

	s.Equal(http.StatusOK, recorder.Code)
	var logs []*models.ActivityLogEntry
	s.Require().NoError(json.Unmarshal(resp.Data, &logs))
	s.Require().Len(logs, 1)
	s.Equal("Member Added", logs[0].Action)
}

func (s *HandlersTestSuite) TestActivityLogsBadLimit() {
	recorder, _ := s.request(http.MethodGet, "/api/v1/activity-logs?limit=abc", nil)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlersTestSuite) TestUpdateSettings() {
	recorder, resp := s.request(http.MethodPut, "/api/v1/settings", gin.H{
		"saccoName": "Umoja SACCO",
	})

	s.Equal(http.StatusOK, recorder.Code)
	var settings models.Settings
	s.Require().NoError(json.Unmarshal(resp.Data, &settings))
	s.Equal("Umoja SACCO", settings.SaccoName)
	s.Equal("KES", settings.Currency)
}

func (s *HandlersTestSuite) TestExportImportRoundTrip() {
	member := s.createMember()
	s.createLoan(member.ID)

	recorder, resp := s.request(http.MethodGet, "/api/v1/system/export", nil)
	s.Equal(http.StatusOK, recorder.Code)

	var exported models.Snapshot
	s.Require().NoError(json.Unmarshal(resp.Data, &exported))
	s.Len(exported.Members, 1)
	s.Len(exported.Loans, 1)

	// Wipe and restore through the import endpoint
	recorder, _ = s.request(http.MethodPost, "/api/v1/system/reset", nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.Empty(s.store.Members())

	recorder, _ = s.request(http.MethodPost, "/api/v1/system/import", exported)
	s.Equal(http.StatusOK, recorder.Code)
	s.Len(s.store.Members(), 1)
	s.Len(s.store.Loans(), 1)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
