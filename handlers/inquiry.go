package handlers

import (
	"net/http"
	"net/url"
	"os"

	"NexusRealty/models"

	"github.com/labstack/echo/v4"
)

// InquiryController relays contact and property inquiries to the external
// hosted form endpoint. Submissions are not persisted here.
type InquiryController struct {
	relayURL string
	client   *http.Client
}

func NewInquiryController() *InquiryController {
	return &InquiryController{
		relayURL: os.Getenv("FORM_RELAY_URL"),
		client:   &http.Client{},
	}
}

func (ic *InquiryController) SubmitInquiry(c echo.Context) error {
	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, email and message are required"})
	}

	if ic.relayURL == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Inquiry relay not configured"})
	}

	form := url.Values{}
	form.Set("name", inquiry.Name)
	form.Set("email", inquiry.Email)
	form.Set("message", inquiry.Message)
	if inquiry.Phone != "" {
		form.Set("phone", inquiry.Phone)
	}
	if inquiry.Subject != "" {
		form.Set("subject", inquiry.Subject)
	}
	if inquiry.PropertyID != "" {
		form.Set("propertyId", inquiry.PropertyID)
	}

	resp, err := ic.client.PostForm(ic.relayURL, form)
	if err != nil {
		c.Logger().Errorf("inquiry relay unreachable: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to submit inquiry"})
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.Logger().Errorf("inquiry relay rejected submission: %s", resp.Status)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Inquiry relay rejected submission"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Inquiry submitted successfully"})
}
