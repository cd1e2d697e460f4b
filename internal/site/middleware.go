package site

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rvrdev/portfolio/internal/logging"
)

// hashingSalt is regenerated on every start, so client hashes only
// correlate requests within one server run.
var hashingSalt = newSalt()

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logging.Log.Fatal("failed to generate hashing salt: ", err)
	}
	return hex.EncodeToString(b)
}

// hashIP hides the client address while keeping it stable per client.
func hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// requestLogger logs page requests. Asset requests are skipped, and
// clients sending DNT are logged without their hash.
func requestLogger(basePath string) gin.HandlerFunc {
	log := logging.For("server")
	skip := []string{basePath + "/static/", "/favicon"}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range skip {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}
		if c.GetHeader("DNT") != "1" {
			fields["client"] = hashIP(c.ClientIP())
		}
		entry := log.WithFields(fields)
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request")
	}
}
