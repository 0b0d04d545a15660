package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dalbodeule/grip-gate/internal/logging"
	"github.com/dalbodeule/grip-gate/internal/token"
)

// gripsig 는 Grip-Sig 토큰을 발급/검증하는 운영용 CLI 입니다.
//
// 사용 예:
//
//	gripsig -mint -iss gateway -key secret
//	gripsig -check -key secret -token eyJhbGciOi...
func main() {
	logger := logging.NewStdJSONLogger("gripsig")

	mint := flag.Bool("mint", false, "issuer/key 로 새 토큰을 발급합니다")
	check := flag.Bool("check", false, "토큰 서명과 만료를 검증합니다")
	iss := flag.String("iss", "", "발급 시 사용할 issuer")
	key := flag.String("key", "", "서명/검증 키 (GRIP_SIG_KEY 환경변수로도 지정 가능)")
	tok := flag.String("token", "", "검증할 토큰")
	flag.Parse()

	sigKey := strings.TrimSpace(*key)
	if sigKey == "" {
		sigKey = strings.TrimSpace(os.Getenv("GRIP_SIG_KEY"))
	}
	if sigKey == "" {
		logger.Error("missing signing key: pass -key or set GRIP_SIG_KEY", nil)
		os.Exit(1)
	}

	switch {
	case *mint:
		if strings.TrimSpace(*iss) == "" {
			logger.Error("missing -iss for mint", nil)
			os.Exit(1)
		}
		raw, err := token.Encode(*iss, []byte(sigKey))
		if err != nil {
			logger.Error("failed to mint token", logging.Fields{"error": err.Error()})
			os.Exit(1)
		}
		fmt.Println(raw)

	case *check:
		if strings.TrimSpace(*tok) == "" {
			logger.Error("missing -token for check", nil)
			os.Exit(1)
		}
		if token.Validate(*tok, []byte(sigKey)) {
			fmt.Println("valid")
			return
		}
		fmt.Println("invalid")
		os.Exit(2)

	default:
		flag.Usage()
		os.Exit(1)
	}
}
