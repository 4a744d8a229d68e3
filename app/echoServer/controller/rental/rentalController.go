package rental

import (
	"log/slog"
	"net/http"

	"bookstore/model"
	rs "bookstore/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

func ids(c echo.Context) (uid, bid primitive.ObjectID, err error) {
	uid, _ = c.Get("user_id").(primitive.ObjectID)
	bid, err = primitive.ObjectIDFromHex(c.Param("id"))
	return uid, bid, err
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	switch rs.Code(err) {
	case rs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
	case rs.ErrAlreadyOwned:
		return c.JSON(http.StatusConflict, echo.Map{"message": "book already purchased"})
	case rs.ErrBookUnavailable:
		return c.JSON(http.StatusConflict, echo.Map{"message": "book unavailable"})
	case rs.ErrInvalidPeriod:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid rental period"})
	case rs.ErrUnauthorized:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "no access to this book"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/books/:id/purchase
func (h *Controller) Purchase(c echo.Context) error {
	uid, bid, err := ids(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.Purchase(c.Request().Context(), uid, bid)
	if err != nil {
		return h.fail(c, "purchase", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "book purchased",
		"data":    out,
	})
}

// POST /v1/books/:id/rent
func (h *Controller) Rent(c echo.Context) error {
	uid, bid, err := ids(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req RentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Rent(c.Request().Context(), uid, bid, model.RentalPeriod(req.RentalPeriod))
	if err != nil {
		return h.fail(c, "rent", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "book rented",
		"data":    out,
	})
}

// GET /v1/books/:id/read streams the PDF to an authorized caller.
func (h *Controller) Read(c echo.Context) error {
	uid, bid, err := ids(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	path, err := h.Svc.ContentPath(c.Request().Context(), uid, bid)
	if err != nil {
		return h.fail(c, "read", err)
	}
	return c.File(path)
}

// GET /v1/users/books
func (h *Controller) MyBooks(c echo.Context) error {
	uid, _ := c.Get("user_id").(primitive.ObjectID)

	purchased, rented, err := h.Svc.MyBooks(c.Request().Context(), uid)
	if err != nil {
		return h.fail(c, "my books", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"purchasedBooks": purchased,
		"rentedBooks":    rented,
	})
}
