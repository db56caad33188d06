package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionService mints and checks the console's own operator tokens. These
// are separate from the upstream bearer token: the console session proves the
// operator authenticated through this console, the upstream token is what the
// gateway attaches to every relayed call.
type SessionService struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (s SessionService) Issue(userID int, fullName, role string) (string, int64, error) {
	now := time.Now().UTC()
	exp := now.Add(s.TTL)
	claims := jwt.MapClaims{
		"iss":  s.Issuer,
		"sub":  strconv.Itoa(userID),
		"name": fullName,
		"role": role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	return signed, exp.Unix(), err
}

func (s SessionService) Parse(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithIssuer(s.Issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
}

// Login relays credentials to the upstream auth service, persists the bearer
// token it returns, and hands the operator a console session token.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	session, err := s.Client.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	if err := s.Tokens.Save(session.Token); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	signed, exp, err := s.Sessions.Issue(session.UserID, session.FullName, session.Role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, LoginResponse{
		Token:     signed,
		ExpiresAt: exp,
		FullName:  session.FullName,
		Role:      session.Role,
	})
}

// Logout clears the persisted bearer token. The upstream logout is best
// effort; a dead upstream should not keep the operator signed in locally.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	_ = s.Client.Logout(r.Context())
	if err := s.Tokens.Clear(); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Logged out")
}

type SessionInfoResponse struct {
	Operator         string     `json:"operator"`
	Role             string     `json:"role"`
	UpstreamSubject  string     `json:"upstreamSubject,omitempty"`
	UpstreamExpires  *time.Time `json:"upstreamExpires,omitempty"`
	UpstreamTokenSet bool       `json:"upstreamTokenSet"`
}

func (s *Server) SessionInfo(w http.ResponseWriter, r *http.Request) {
	info := SessionInfoResponse{
		Operator: OperatorName(r),
		Role:     OperatorRole(r),
	}
	if claims, ok := s.Tokens.Peek(); ok {
		info.UpstreamTokenSet = true
		info.UpstreamSubject = claims.Subject
		if !claims.ExpiresAt.IsZero() {
			expires := claims.ExpiresAt
			info.UpstreamExpires = &expires
		}
	}
	WriteJSON(w, http.StatusOK, info)
}
