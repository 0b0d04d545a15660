package domainmap

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dalbodeule/grip-gate/internal/logging"
)

// StaticMap 은 routes 파일 기반 DomainMap 구현입니다.
//
// 파일 형식은 한 줄에 라우트 하나입니다:
//
//	<domain> [옵션] <target> [<target> ...]
//
// 옵션은 "k=v,k=v" 목록으로 prefix / sig_iss / sig_key 를 지원하고,
// 타겟은 "host:port[,ssl][,trusted][,insecure]" 형식입니다.
// domain 에 "*" 를 쓰면 어느 호스트에도 매칭되는 기본 라우트가 됩니다.
//
// 예:
//
//	example.com prefix=chat-,sig_iss=gate,sig_key=secret 127.0.0.1:8080 10.0.0.2:8443,ssl,insecure
//	* 127.0.0.1:3000
type StaticMap struct {
	log logging.Logger

	mu     sync.RWMutex
	routes map[string]Entry
}

// NewStaticMap 은 비어 있는 StaticMap 을 생성합니다.
func NewStaticMap(logger logging.Logger) *StaticMap {
	return &StaticMap{
		log:    logger.With(logging.Fields{"component": "domainmap"}),
		routes: make(map[string]Entry),
	}
}

// LoadFile 은 routes 파일을 읽어 전체 라우트 테이블을 교체합니다.
func (m *StaticMap) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open routes file: %w", err)
	}
	defer f.Close()

	routes := make(map[string]Entry)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		domain, entry, err := parseRouteLine(line)
		if err != nil {
			return fmt.Errorf("routes line %d: %w", lineNo, err)
		}
		routes[domain] = entry
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read routes file: %w", err)
	}

	m.mu.Lock()
	m.routes = routes
	m.mu.Unlock()

	m.log.Info("routes loaded", logging.Fields{
		"path":   path,
		"routes": len(routes),
	})
	return nil
}

// Set 은 단일 라우트를 등록하거나 교체합니다. 테스트에서 사용합니다.
func (m *StaticMap) Set(domain string, entry Entry) {
	m.mu.Lock()
	m.routes[strings.ToLower(domain)] = entry
	m.mu.Unlock()
}

// Entry 는 host 에 대한 라우트를 찾습니다. 정확한 호스트 매칭이 우선하고,
// 없으면 "*" 기본 라우트를 반환합니다.
func (m *StaticMap) Entry(host, path string, isHTTPS bool) Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	host = strings.ToLower(host)
	if e, ok := m.routes[host]; ok {
		return e
	}
	if e, ok := m.routes["*"]; ok {
		return e
	}
	return Entry{}
}

// parseRouteLine 은 routes 파일의 한 줄을 해석합니다.
func parseRouteLine(line string) (string, Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", Entry{}, fmt.Errorf("expected domain and at least one target")
	}

	domain := strings.ToLower(fields[0])
	rest := fields[1:]

	var entry Entry

	// 두 번째 필드가 k=v 옵션 목록일 수 있습니다.
	if strings.Contains(rest[0], "=") && !strings.Contains(rest[0], ":") {
		for _, opt := range strings.Split(rest[0], ",") {
			kv := strings.SplitN(opt, "=", 2)
			if len(kv) != 2 {
				return "", Entry{}, fmt.Errorf("bad option %q", opt)
			}
			switch kv[0] {
			case "prefix":
				entry.Prefix = kv[1]
			case "sig_iss":
				entry.SigIss = kv[1]
			case "sig_key":
				entry.SigKey = kv[1]
			default:
				return "", Entry{}, fmt.Errorf("unknown option %q", kv[0])
			}
		}
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return "", Entry{}, fmt.Errorf("no targets for domain %s", domain)
	}

	for _, raw := range rest {
		t, err := ParseTarget(raw)
		if err != nil {
			return "", Entry{}, err
		}
		entry.Targets = append(entry.Targets, t)
	}

	return domain, entry, nil
}

// ParseTarget 은 "host:port[,ssl][,trusted][,insecure]" 를 Target 으로 변환합니다.
func ParseTarget(raw string) (Target, error) {
	parts := strings.Split(raw, ",")

	host, portStr, err := net.SplitHostPort(parts[0])
	if err != nil {
		return Target{}, fmt.Errorf("bad target %q: %w", raw, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Target{}, fmt.Errorf("bad target port %q", portStr)
	}

	t := Target{Host: host, Port: port}
	for _, flag := range parts[1:] {
		switch strings.TrimSpace(flag) {
		case "ssl":
			t.SSL = true
		case "trusted":
			t.Trusted = true
		case "insecure":
			t.Insecure = true
		case "":
		default:
			return Target{}, fmt.Errorf("unknown target flag %q", flag)
		}
	}
	return t, nil
}
