package user

import (
	"errors"
	"log/slog"
	"net/http"

	notifsvc "bookstore/service/notification"
	rs "bookstore/service/rental"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Controller struct {
	Notif   notifsvc.Service
	Sweeper rs.Sweeper
	Log     *slog.Logger
}

func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "admin"
}

// GET /v1/users/notifications
func (h *Controller) Notifications(c echo.Context) error {
	uid, _ := c.Get("user_id").(primitive.ObjectID)

	list, err := h.Notif.List(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, notifsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		h.Log.Error("notifications", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	unread, err := h.Notif.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("unread count", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"unread": unread,
		"data":   list,
	})
}

// PUT /v1/users/notifications/:id
func (h *Controller) MarkNotificationRead(c echo.Context) error {
	uid, _ := c.Get("user_id").(primitive.ObjectID)
	nid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Notif.MarkRead(c.Request().Context(), uid, nid); err != nil {
		if errors.Is(err, notifsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "notification not found"})
		}
		h.Log.Error("mark read", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "notification marked as read"})
}

// POST /v1/users/check-rentals  (admin)
// An optional userId query param restricts the sweep to one user.
func (h *Controller) CheckRentals(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	var (
		sent int
		err  error
	)
	if target := c.QueryParam("userId"); target != "" {
		uid, perr := primitive.ObjectIDFromHex(target)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid userId"})
		}
		sent, err = h.Sweeper.CheckUser(c.Request().Context(), uid)
		if err != nil && rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
	} else {
		sent, err = h.Sweeper.CheckAll(c.Request().Context())
	}
	if err != nil {
		h.Log.Error("check rentals", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "rental check finished",
		"sent":    sent,
	})
}
