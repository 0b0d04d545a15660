package token

import (
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

// Lifetime 은 발급되는 Grip-Sig 토큰의 유효 기간입니다.
// Lifetime is how long a freshly minted Grip-Sig token stays valid.
const Lifetime = 3600 * time.Second

var allowedAlgs = []jose.SignatureAlgorithm{jose.HS256}

// Encode 는 issuer 와 만료 시각(현재 UTC + 1시간) 클레임을 담은 HS256 JWT 를 생성합니다.
// Encode mints an HS256 JWT carrying the issuer and an expiry one hour out.
func Encode(iss string, key []byte) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: key},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("create signer: %w", err)
	}

	claims := jwt.Claims{
		Issuer: iss,
		Expiry: jwt.NewNumericDate(time.Now().UTC().Add(Lifetime)),
	}

	raw, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", fmt.Errorf("sign claims: %w", err)
	}
	return raw, nil
}

// Validate 는 토큰의 서명이 key 로 검증되고 exp 클레임이 양의 정수이면서
// 현재 UTC 초보다 미래인 경우에만 true 를 반환합니다.
// 어떤 종류의 파싱 실패도 panic 없이 false 로 처리됩니다.
//
// Validate reports whether the token's signature verifies under key and its
// exp claim is a positive integer strictly in the future. Malformed input of
// any kind yields false.
func Validate(raw string, key []byte) bool {
	tok, err := jwt.ParseSigned(raw, allowedAlgs)
	if err != nil {
		return false
	}

	var claims jwt.Claims
	if err := tok.Claims(key, &claims); err != nil {
		return false
	}

	if claims.Expiry == nil {
		return false
	}
	exp := int64(*claims.Expiry)
	if exp <= 0 || time.Now().UTC().Unix() >= exp {
		return false
	}
	return true
}
