package clientinfo

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	ua "github.com/mssola/user_agent"
)

// Device holds parsed information from a User-Agent string. It is stored
// alongside raw analytics events so funnel reports can segment by platform.
type Device struct {
	DeviceType string `json:"device_type"`
	OS         string `json:"os"`
	Browser    string `json:"browser"`
	IsBot      bool   `json:"is_bot"`
	Raw        string `json:"raw"`
}

// ParseUserAgent extracts device information from a User-Agent header value.
func ParseUserAgent(userAgent string) Device {
	if userAgent == "" {
		return Device{DeviceType: "unknown", OS: "Unknown", Browser: "Unknown", Raw: userAgent}
	}

	parser := ua.New(userAgent)
	browser, _ := parser.Browser()

	device := Device{
		Raw:     userAgent,
		IsBot:   parser.Bot(),
		OS:      parser.OS(),
		Browser: browser,
	}

	switch {
	case parser.Mobile() && isTablet(userAgent):
		device.DeviceType = "tablet"
	case parser.Mobile():
		device.DeviceType = "mobile"
	default:
		device.DeviceType = "desktop"
	}

	return device
}

func isTablet(userAgent string) bool {
	lowered := strings.ToLower(userAgent)
	for _, marker := range []string{"ipad", "tablet", "kindle", "sm-t", "nexus 7", "nexus 9", "nexus 10"} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// RealIP extracts the client IP, preferring proxy-set headers over the
// socket peer address.
func RealIP(c *gin.Context) string {
	if realIP := strings.TrimSpace(c.Request.Header.Get("X-Real-IP")); realIP != "" && net.ParseIP(realIP) != nil {
		return realIP
	}

	if forwarded := c.Request.Header.Get("X-Forwarded-For"); forwarded != "" {
		for _, part := range strings.Split(forwarded, ",") {
			candidate := strings.TrimSpace(part)
			if net.ParseIP(candidate) != nil {
				return candidate
			}
		}
	}

	return c.ClientIP()
}
