package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carbon-tracker/internal/auth"
	"carbon-tracker/internal/domain"
	"carbon-tracker/internal/emissions"
	"carbon-tracker/internal/service"
)

const userContextKey = "currentUser"

// Handler wires HTTP routes to domain services.
type Handler struct {
	users          service.UserService
	logs           service.LogService
	engine         *emissions.Engine
	tokens         *auth.TokenService
	allowedOrigins []string
}

func NewHandler(users service.UserService, logs service.LogService, engine *emissions.Engine, tokens *auth.TokenService, allowedOrigins []string) *Handler {
	return &Handler{
		users:          users,
		logs:           logs,
		engine:         engine,
		tokens:         tokens,
		allowedOrigins: allowedOrigins,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(h.allowedOrigins))

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/compute", h.compute)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authed := api.Group("")
		authed.Use(h.authMiddleware())
		authed.POST("/logs", h.createLog)
		authed.GET("/logs", h.listLogs)
		authed.GET("/me", h.whoami)
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type computeRequest struct {
	Date           string  `json:"date"`
	TravelKm       float64 `json:"travelKm"`
	TravelMode     string  `json:"travelMode"`
	ElectricityKwh float64 `json:"electricityKwh"`
	Diet           string  `json:"diet"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsActive bool   `json:"isActive"`
}

type ComputeResponse struct {
	TravelKg      float64  `json:"travelKg"`
	ElectricityKg float64  `json:"electricityKg"`
	FoodKg        float64  `json:"foodKg"`
	TotalKg       float64  `json:"totalKg"`
	EcoScore      int      `json:"ecoScore"`
	Tips          []string `json:"tips"`
}

type LogEntryResponse struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	TravelKm       float64 `json:"travelKm"`
	TravelMode     string  `json:"travelMode"`
	ElectricityKwh float64 `json:"electricityKwh"`
	Diet           string  `json:"diet"`
	TravelKg       float64 `json:"travelKg"`
	ElectricityKg  float64 `json:"electricityKg"`
	FoodKg         float64 `json:"foodKg"`
	TotalKg        float64 `json:"totalKg"`
}

type LogListResponse struct {
	Items []LogEntryResponse `json:"items"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	User      UserResponse `json:"user"`
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Writer.Header().Set("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authMiddleware extracts and verifies the bearer token, resolves its subject
// to a live user and stores the user on the request context. A subject that no
// longer maps to a user is treated as unauthenticated, not as a lookup error.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		email, err := h.tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		user, err := h.users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateIdentity) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		User:      userToResponse(user),
	})
}

func (h *Handler) compute(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.engine.Compute(req.TravelKm, req.TravelMode, req.ElectricityKwh, req.Diet)
	c.JSON(http.StatusOK, resultToResponse(result))
}

func (h *Handler) createLog(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	entry, err := h.logs.Append(c.Request.Context(), user.ID, service.LogInputs{
		Date:           req.Date,
		TravelKm:       req.TravelKm,
		TravelMode:     req.TravelMode,
		ElectricityKwh: req.ElectricityKwh,
		Diet:           req.Diet,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entryToResponse(*entry))
}

func (h *Handler) listLogs(c *gin.Context) {
	user := currentUser(c)
	entries, err := h.logs.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]LogEntryResponse, len(entries))
	for i := range entries {
		items[i] = entryToResponse(entries[i])
	}
	c.JSON(http.StatusOK, LogListResponse{Items: items})
}

func (h *Handler) whoami(c *gin.Context) {
	c.JSON(http.StatusOK, userToResponse(currentUser(c)))
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		IsActive: user.IsActive,
	}
}

func resultToResponse(result emissions.Result) ComputeResponse {
	tips := result.Tips
	if tips == nil {
		tips = []string{}
	}
	return ComputeResponse{
		TravelKg:      result.TravelKg,
		ElectricityKg: result.ElectricityKg,
		FoodKg:        result.FoodKg,
		TotalKg:       result.TotalKg,
		EcoScore:      result.EcoScore,
		Tips:          tips,
	}
}

func entryToResponse(entry domain.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:             entry.ID,
		Date:           entry.Date,
		TravelKm:       entry.TravelKm,
		TravelMode:     entry.TravelMode,
		ElectricityKwh: entry.ElectricityKwh,
		Diet:           entry.Diet,
		TravelKg:       entry.TravelKg,
		ElectricityKg:  entry.ElectricityKg,
		FoodKg:         entry.FoodKg,
		TotalKg:        entry.TotalKg,
	}
}
