package v1

import (
	"net/http"

	"github.com/budget-wallets/backend/internal/auth"
	"github.com/budget-wallets/backend/internal/httputil"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for registration, sessions and
// the user profile with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", OptionsAuthRegister)
		r.POST("/register", Register)
	}

	{
		r.OPTIONS("/login", OptionsAuthLogin)
		r.POST("/login", Login)
	}

	{
		r.OPTIONS("/session", OptionsAuthSession)
		r.GET("/session", auth.Required(), GetSession)
		r.POST("/session", auth.Required(), RefreshSession)
		r.DELETE("/session", auth.Required(), DeleteSession)
	}

	{
		r.OPTIONS("/user", OptionsAuthUser)
		r.GET("/user", auth.Required(), GetUser)
		r.PATCH("/user", auth.Required(), UpdateUser)
	}

	{
		r.OPTIONS("/password", OptionsAuthPassword)
		r.POST("/password", auth.Required(), ChangePassword)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuthRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsAuthLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/session [options]
func OptionsAuthSession(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/user [options]
func OptionsAuthUser(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/password [options]
func OptionsAuthPassword(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user and logs them in
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error:  &e,
			Errors: validationMessages(err),
		})
		return
	}

	_, err = auth.Register(models.DB, request.Email, request.Name, request.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	session, err := auth.Login(models.DB, request.Email, request.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	data := newSession(c, session)
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Log in
// @Description	Starts a new session
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error:  &e,
			Errors: validationMessages(err),
		})
		return
	}

	session, err := auth.Login(models.DB, request.Email, request.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	data := newSession(c, session)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Get session
// @Description	Returns the current session
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		401	{object}	httpError
// @Router			/v1/auth/session [get]
func GetSession(c *gin.Context) {
	session, _ := auth.FromContext(c)

	data := newSession(c, session)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Refresh session
// @Description	Replaces the current session with a new one. The current token is invalid afterwards.
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	SessionResponse
// @Router			/v1/auth/session [post]
func RefreshSession(c *gin.Context) {
	session, _ := auth.FromContext(c)

	refreshed, err := auth.Refresh(models.DB, session)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	data := newSession(c, refreshed)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}

// @Summary		Log out
// @Description	Ends the current session
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/auth/session [delete]
func DeleteSession(c *gin.Context) {
	session, _ := auth.FromContext(c)

	err := auth.Logout(models.DB, session)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get user
// @Description	Returns the user of the current session
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/auth/user [get]
func GetUser(c *gin.Context) {
	session, _ := auth.FromContext(c)

	data := newUser(c, session.User)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Updates the profile of the user of the current session
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/auth/user [patch]
func UpdateUser(c *gin.Context) {
	session, _ := auth.FromContext(c)

	var data UserEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error:  &e,
			Errors: validationMessages(err),
		})
		return
	}

	user := session.User
	err = auth.UpdateProfile(models.DB, &user, data.Name)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}

// @Summary		Change password
// @Description	Sets a new password for the user of the current session
// @Tags			Auth
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			passwords	body		PasswordRequest	true	"Current and new password"
// @Router			/v1/auth/password [post]
func ChangePassword(c *gin.Context) {
	session, _ := auth.FromContext(c)

	var request PasswordRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := session.User
	err = auth.ChangePassword(models.DB, &user, request.OldPassword, request.NewPassword)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
