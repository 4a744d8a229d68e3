package echoServer

import (
	"net/http"

	authctrl "bookstore/app/echoServer/controller/auth"
	bookctrl "bookstore/app/echoServer/controller/book"
	rentalctrl "bookstore/app/echoServer/controller/rental"
	userctrl "bookstore/app/echoServer/controller/user"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type C struct {
	Auth      *authctrl.Controller
	Book      *bookctrl.Controller
	Rental    *rentalctrl.Controller
	User      *userctrl.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)
	pub.GET("/books", c.Book.List)
	pub.GET("/books/:id", c.Book.Detail)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		// query lookup lets the PDF reader open /read links directly
		TokenLookup: "header:Authorization,query:token",
	}))
	auth.Use(extractIdentity)

	auth.GET("/auth/profile", c.Auth.Profile)

	auth.POST("/books/:id/purchase", c.Rental.Purchase)
	auth.POST("/books/:id/rent", c.Rental.Rent)
	auth.GET("/books/:id/read", c.Rental.Read)

	auth.GET("/users/books", c.Rental.MyBooks)
	auth.GET("/users/notifications", c.User.Notifications)
	auth.PUT("/users/notifications/:id", c.User.MarkNotificationRead)

	// Admin endpoints
	auth.POST("/books", c.Book.Create)
	auth.PUT("/books/:id", c.Book.Update)
	auth.DELETE("/books/:id", c.Book.Delete)
	auth.POST("/users/check-rentals", c.User.CheckRentals)
}

// extractIdentity pulls the verified claims into user_id / role.
func extractIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tok, ok := ctx.Get("user").(*jwt.Token)
		if !ok || tok == nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		uid, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}

		ctx.Set("user_id", uid)
		if role, ok := claims["role"].(string); ok {
			ctx.Set("role", role)
		}
		return next(ctx)
	}
}
