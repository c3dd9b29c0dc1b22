package dkssite

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/dkssite/contact"
	"github.com/eringen/dkssite/views"
)

const (
	msgRateLimited   = "Too many messages. Please try again later."
	msgSubmitFailed  = "Failed to send message. Please try again."
	msgBadForm       = "Your message could not be read. Please try again."
	contactPageTitle = "Contact Us"
	contactPageDesc  = "Get in touch for program inquiries, partnerships or general information."
)

func (a *App) contactPage(c echo.Context) views.ContactPage {
	return views.ContactPage{Chrome: a.chrome(c, "/contact/", contactPageTitle, contactPageDesc)}
}

func (a *App) handleContact(c echo.Context) error {
	page := a.contactPage(c)
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	if flashes := sess.Flashes(); len(flashes) > 0 {
		if msg, ok := flashes[0].(string); ok {
			page.Success = msg
		}
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
	}
	return Render(c, a.Views.Contact(page))
}

// handleContactForm accepts the HTML form. Success redirects back to the
// contact page with a flash; invalid input re-renders the form.
func (a *App) handleContactForm(c echo.Context) error {
	page := a.contactPage(c)
	var sub contact.Submission
	if err := c.Bind(&sub); err != nil {
		c.Logger().Debugf("contact: bind form: %v", err)
		page.Error = msgBadForm
		return RenderStatus(c, http.StatusBadRequest, a.Views.Contact(page))
	}
	page.Form = sub

	if !a.contactLimiter.Allow(c.RealIP()) {
		page.Error = msgRateLimited
		return RenderStatus(c, http.StatusTooManyRequests, a.Views.Contact(page))
	}

	receipt, err := a.Contact.Submit(c.Request().Context(), sub)
	if err != nil {
		if isInvalid(err) {
			page.Error = err.Error()
			return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Contact(page))
		}
		return err
	}

	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.AddFlash(receipt.Message)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/contact/")
}

type contactResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	ID      string             `json:"id"`
	Payload contact.Submission `json:"payload"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) handleContactAPI(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, errorResponse{msgRateLimited})
	}
	var sub contact.Submission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid request body"})
	}
	receipt, err := a.Contact.Submit(c.Request().Context(), sub)
	if err != nil {
		if isInvalid(err) {
			return c.JSON(http.StatusBadRequest, errorResponse{err.Error()})
		}
		c.Logger().Errorf("contact: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{msgSubmitFailed})
	}
	return c.JSON(http.StatusOK, contactResponse{
		Success: true,
		Message: receipt.Message,
		ID:      receipt.ID,
		Payload: receipt.Payload,
	})
}

// isInvalid reports whether err rejects the submission's content.
func isInvalid(err error) bool {
	var fe *contact.FieldError
	return errors.Is(err, contact.ErrMissingFields) ||
		errors.Is(err, contact.ErrInvalidEmail) ||
		errors.As(err, &fe)
}
