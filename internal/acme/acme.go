package acme

import "crypto/tls"

// Manager 는 front HTTPS 리스너에 주입할 인증서 관리를 추상화합니다.
// 세션 코어는 TLS 를 직접 다루지 않으므로, 인증서 수급(ACME, 파일, 외부
// 터미네이터)은 전부 이 경계 밖의 일입니다.
type Manager interface {
	// TLSConfig 는 HTTPS 서버에 주입할 tls.Config 를 반환합니다.
	TLSConfig() *tls.Config
}

// NewFileManager 는 고정된 인증서/키 파일을 사용하는 Manager 를 생성합니다.
func NewFileManager(certFile, keyFile string) (Manager, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	return &fileManager{
		cfg: &tls.Config{
			Certificates: []tls.Certificate{cert},
		},
	}, nil
}

type fileManager struct {
	cfg *tls.Config
}

func (f *fileManager) TLSConfig() *tls.Config {
	return f.cfg.Clone()
}
