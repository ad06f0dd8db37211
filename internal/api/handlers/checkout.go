package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/internal/checkout"
	"github.com/velas-starlight/storefront/internal/domain"
	"github.com/velas-starlight/storefront/pkg/errors"
)

// ApplyDiscountRequest carries a promotional code.
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// SetShippingMethodRequest selects the shipping method.
type SetShippingMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

func HandleGetCheckout(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"step":            session.Step(),
			"shipping_method": session.ShippingMethod(),
			"summary":         session.Summary(),
		})
	}
}

func HandleFinalSummary(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, session.FinalSummary())
	}
}

func HandleSetShippingMethod(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetShippingMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if !session.SetShippingMethod(domain.ShippingMethod(req.Method)) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown shipping method"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"summary": session.Summary()})
	}
}

func HandleShippingDetails(form *checkout.ContactForm) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contact domain.ShippingContact
		if err := c.ShouldBindJSON(&contact); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		form.Set(contact)
		c.JSON(http.StatusOK, gin.H{"valid": form.IsValid()})
	}
}

func HandleApplyDiscount(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		pct, err := session.ApplyDiscount(req.Code)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid discount code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"percentage": pct,
			"summary":    session.Summary(),
		})
	}
}

func HandleProceedToShipping(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := session.ProceedToShipping()
		if err != nil {
			respondCheckoutError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"step":    session.Step(),
			"summary": summary,
		})
	}
}

func HandleProceedToPayment(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := session.ProceedToPayment()
		if err != nil {
			respondCheckoutError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"step":    session.Step(),
			"summary": summary,
		})
	}
}

func HandleBackToCart(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.BackToCart()
		c.JSON(http.StatusOK, gin.H{"step": session.Step()})
	}
}

func HandleBackToShipping(session *checkout.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.BackToShipping()
		c.JSON(http.StatusOK, gin.H{"step": session.Step()})
	}
}

func HandleDownloadQuote(session *checkout.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.DownloadQuote(); err != nil {
			logger.Warn("Quote download rejected", zap.Error(err))
			respondCheckoutError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "generated"})
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	var emptyCart *errors.ErrEmptyCart
	var badTransition *errors.ErrInvalidStateTransition
	var formInvalid *errors.ErrShippingFormInvalid
	var missingContact *errors.ErrMissingContact

	switch {
	case stderrors.As(err, &emptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case stderrors.As(err, &badTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case stderrors.As(err, &formInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "shipping details are incomplete"})
	case stderrors.As(err, &missingContact):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
