package utils

import (
	"net/url"
	"strings"
)

// ResolveDomain extrai o domínio registrável de uma URL de destino,
// normalizado em minúsculas e sem o prefixo www.
func ResolveDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
