package auth

import (
	"net/http"
	"os"
	"time"

	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/opalstreet/storefront-api/models"
	"gorm.io/gorm"
)

// AuthCookieName is the session cookie the admin route guard inspects.
const AuthCookieName = "auth"

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// LoginHandler verifies a Firebase ID token, loads or creates the local
// user record (with its cart), and responds with a service JWT. The role
// is "admin" when the email is registered in the admins table.
//
// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		uid := token.UID

		user, err := loadOrCreateUser(db, uid, email, name, picture)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		role := "user"
		if isAdmin(db, email) {
			role = "admin"
		}

		jwtStr, err := issueJWT(email, role, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		setAuthCookie(c, jwtStr)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"role":    role,
			"token":   jwtStr,
		})
	}
}

// SignupHandler creates the account with the identity collaborator and the
// matching local user row.
//
// POST /auth/signup
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		params := (&fbauth.UserToCreate{}).
			Email(req.Email).
			Password(req.Password).
			DisplayName(req.Name)

		record, err := firebaseAuth.CreateUser(c.Request.Context(), params)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create account: " + err.Error()})
			return
		}

		user, err := loadOrCreateUser(db, record.UID, req.Email, req.Name, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		jwtStr, err := issueJWT(req.Email, "user", record.UID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		setAuthCookie(c, jwtStr)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Signup successful",
			"user":    user,
			"token":   jwtStr,
		})
	}
}

// LogoutHandler clears the session cookie; the client drops its token.
//
// POST /auth/logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(AuthCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func loadOrCreateUser(db *gorm.DB, uid, email, name, picture string) (*models.User, error) {
	var user models.User
	err := db.Preload("Cart.Items").Where("id = ?", uid).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       uid,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "firebase",
			Cart:     models.Cart{UserID: uid},
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if name != "" || picture != "" {
		db.Model(&user).Updates(models.User{Name: name, Picture: picture})
	}
	return &user, nil
}

func isAdmin(db *gorm.DB, email string) bool {
	if email == os.Getenv("SUPER_ADMIN_EMAIL") {
		return true
	}
	var admin models.Admin
	return db.Where("email = ?", email).First(&admin).Error == nil
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(AuthCookieName, token, int(tokenTTL.Seconds()), "/", "", false, true)
}

// issueJWT generates the service token carried on Bearer requests.
func issueJWT(email, role, userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
