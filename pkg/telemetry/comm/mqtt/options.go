package mqtt

import (
	"net/url"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// ConnectRetryInterval is the wait between attempts of the
// first connection.
const ConnectRetryInterval = time.Second

// ClientOptionsFromURL parses a broker URL of the form
// mqtt://[user:pass@]host:port/topic-prefix?client-id=id
// into client options and the topic prefix, which ends with
// "/" unless empty. ssl:// and ws:// are passed to paho as is.
func ClientOptionsFromURL(brokerURL string) (*paho.ClientOptions, string, error) {
	u, err := url.Parse(brokerURL)
	if err != nil {
		return nil, "", err
	}
	scheme := u.Scheme
	switch scheme {
	case "", "mqtt":
		scheme = "tcp"
	}

	opts := paho.NewClientOptions().
		AddBroker(scheme + "://" + u.Host).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(ConnectRetryInterval).
		SetCleanSession(true)
	if user := u.User; user != nil {
		opts.SetUsername(user.Username())
		if pwd, ok := user.Password(); ok {
			opts.SetPassword(pwd)
		}
	}
	if id := u.Query().Get("client-id"); id != "" {
		opts.SetClientID(id)
	}

	prefix := strings.TrimPrefix(u.Path, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return opts, prefix, nil
}

// MatchTopic reports whether topic matches a subscription pattern
// with the "+" (one level) and trailing "#" (any levels) wildcards.
func MatchTopic(topic, pattern string) bool {
	levels, parts := strings.Split(topic, "/"), strings.Split(pattern, "/")
	for n, part := range parts {
		if part == "#" {
			return n == len(parts)-1
		}
		if n >= len(levels) || (part != "+" && part != levels[n]) {
			return false
		}
	}
	return len(parts) == len(levels)
}
