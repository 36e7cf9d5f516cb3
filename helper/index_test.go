package helper

import (
	"testing"

	"etickets/model"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Coding@1234?")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Coding@1234?" {
		t.Fatal("password stored in the clear")
	}

	if !CheckPasswordHash("Coding@1234?", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestAccessTokenCarriesClaims(t *testing.T) {
	JwtSecret = []byte("test-secret")

	tokenClaim := model.TokenClaim{
		UserId:   42,
		Email:    "user@etickets.com",
		FullName: "Test User",
	}

	signed, err := GenerateAccessToken(tokenClaim)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	token, err := ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if !token.Valid {
		t.Fatal("freshly minted token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims have type %T, want jwt.MapClaims", token.Claims)
	}
	if got := claims["userId"].(float64); uint(got) != tokenClaim.UserId {
		t.Fatalf("userId claim = %v, want %d", got, tokenClaim.UserId)
	}
	if claims["email"] != tokenClaim.Email {
		t.Fatalf("email claim = %v, want %s", claims["email"], tokenClaim.Email)
	}
	if claims["fullName"] != tokenClaim.FullName {
		t.Fatalf("fullName claim = %v, want %s", claims["fullName"], tokenClaim.FullName)
	}
}

// The signal handler in main stops both background jobs; stopping before a
// start must not panic.
func TestSchedulerStopsAreNilSafe(t *testing.T) {
	StopMovieStatusScheduler()
	StopCartSweeper()
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	JwtSecret = []byte("test-secret")

	signed, err := GenerateAccessToken(model.TokenClaim{UserId: 1, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	JwtSecret = []byte("another-secret")
	token, err := ParseToken(signed)
	if err == nil && token.Valid {
		t.Fatal("token signed with a different secret was accepted")
	}
}
