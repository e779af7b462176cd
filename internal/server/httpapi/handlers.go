package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/server/payslip"
	"github.com/gin-gonic/gin"
)

// writeError maps the error taxonomy onto HTTP statuses. Unexpected
// errors are logged and surfaced as 500 without masking that a failure
// happened.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidArgument), errors.Is(err, common.ErrorAlreadyExists):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, common.ErrorUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "incorrect credentials"})
	case errors.Is(err, common.ErrorForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "not authorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if _, err := s.users.Signup(c.Request.Context(), req.Email, req.Password, req.Role); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email exists"})
			return
		}
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "User created"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, user, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
	})
}

func (s *Server) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

type createSlipRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Amount     float64 `json:"amount"`
	Month      string  `json:"month" binding:"required"`
	Year       int     `json:"year" binding:"required"`
}

func (s *Server) handleCreateSlip(c *gin.Context) {
	var req createSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if _, err := s.payroll.CreateSlip(c.Request.Context(), req.EmployeeID, req.Amount, req.Month, req.Year); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "Salary slip created"})
}

func (s *Server) handleListSlips(c *gin.Context) {
	result, err := s.payroll.ListSlips(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDownloadSlip(c *gin.Context) {
	viewer := currentUser(c)

	slip, err := s.payroll.GetSlip(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	doc, err := payslip.Render(slip, viewer.Email)
	if err != nil {
		if errors.Is(err, payslip.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		s.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Payslip_%s.pdf", slip.Month))
	c.Data(http.StatusOK, "application/pdf", doc)
}

type submitExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category" binding:"required"`
}

func (s *Server) handleSubmitExpense(c *gin.Context) {
	var req submitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if _, err := s.payroll.SubmitExpense(c.Request.Context(), currentUser(c), req.Description, req.Amount, req.Category); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "Expense submitted"})
}

func (s *Server) handleListExpenses(c *gin.Context) {
	result, err := s.payroll.ListExpenses(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type updateExpenseStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) handleUpdateExpenseStatus(c *gin.Context) {
	var req updateExpenseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := s.payroll.UpdateExpenseStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Expense updated successfully"})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.payroll.AggregateStats(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleListUsers(c *gin.Context) {
	result, err := s.users.ListUsers(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
