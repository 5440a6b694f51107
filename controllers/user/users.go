package userControllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/optombazar7-cpu/SportZone/models"
	"github.com/optombazar7-cpu/SportZone/notify"
	"github.com/optombazar7-cpu/SportZone/store"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost keeps login latency interactive while staying a slow hash.
const bcryptCost = 12

type RegisterInput struct {
	Username  string  `json:"username" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account with a bcrypt-hashed password and fires the
// welcome email in the background.
// POST /api/auth/register
func Register(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data: " + err.Error()})
			return
		}

		if _, exists := st.UserByEmail(input.Email); exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bu email bilan foydalanuvchi allaqachon mavjud"})
			return
		}
		if _, exists := st.UserByUsername(input.Username); exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bu username allaqachon band"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := st.CreateUser(models.User{
			Username:  input.Username,
			Email:     input.Email,
			Password:  string(hashed),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
		})

		// Welcome email must never fail the registration.
		go func() {
			subject := fmt.Sprintf("Xush kelibsiz SportZone'ga, %s!", user.FirstName)
			content := fmt.Sprintf(
				"Hurmatli %s %s,\n\nSportZone'ga xush kelibsiz! Sizning akkauntingiz muvaffaqiyatli yaratildi.\n\nRahmat,\nSportZone jamoasi",
				user.FirstName, user.LastName,
			)
			if _, err := notify.SendEmail(user.Email, subject, content); err != nil {
				log.Printf("❌ Welcome email failed: %v", err)
			}
		}()

		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// Login verifies the password against the stored bcrypt hash and issues a
// JWT. The same error is returned for an unknown email and a wrong
// password.
// POST /api/auth/login
func Login(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login data: " + err.Error()})
			return
		}

		user, ok := st.UserByEmail(input.Email)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email yoki parol noto'g'ri"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email yoki parol noto'g'ri"})
			return
		}

		token, err := issueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// GetProfile returns a user by id. JWT-protected.
// GET /api/user/:id
func GetProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := st.UserByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Foydalanuvchi topilmadi"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
