package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/logging"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/repomanager"
	"github.com/rwi001/Valentine-Funs/internal/server/services"
)

type Handler struct {
	otp     *services.OTPService
	billing *services.BillingService
	store   repomanager.RepositoryManager
	logger  logging.Logger
}

func NewHandler(otp *services.OTPService, billing *services.BillingService, store repomanager.RepositoryManager, logger logging.Logger) *Handler {
	return &Handler{
		otp:     otp,
		billing: billing,
		store:   store,
		logger:  logger.With("module", "http"),
	}
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

func (h *Handler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	delivered, err := h.otp.Issue(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	message := "OTP sent to your email"
	if !delivered {
		// The code itself stays out of the response; it is only in the
		// server log in this mode.
		message = "OTP generated (email delivery not configured, check server logs)"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	token, err := h.otp.Verify(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified", "token": token})
}

type createOrderRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	order, isMock, err := h.billing.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"success": true, "order": order}
	if isMock {
		resp["isMock"] = true
	}
	c.JSON(http.StatusOK, resp)
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Email             string `json:"email"`
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := h.billing.VerifyPayment(c.Request.Context(),
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified"})
}

func (h *Handler) Health(c *gin.Context) {
	storage := "memory"
	if h.store.Durable() {
		storage = "mongo"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": storage})
}

// fail maps core errors to the response table. Client-caused failures get
// a specific message and 400; backend failures get a generic message and
// 500, with the detail kept server-side. Unknown email is deliberately
// 400, not 404.
func (h *Handler) fail(c *gin.Context, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, message = http.StatusBadRequest, "Missing required fields"
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusBadRequest, "User not found"
	case errors.Is(err, common.ErrorInvalidOTP):
		status, message = http.StatusBadRequest, "Invalid/Expired OTP"
	case errors.Is(err, common.ErrorSignatureMismatch):
		status, message = http.StatusBadRequest, "Payment verification failed"
	case errors.Is(err, common.ErrorGateway):
		status, message = http.StatusInternalServerError, "Could not create order"
	default:
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}
