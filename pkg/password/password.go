// Package password generates the short credentials handed to newly
// created agents and customers.
package password

import "crypto/rand"

// charset omits lookalikes (0/O, 1/l/I) so credentials survive being
// read aloud or copied from a text message.
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const length = 8

// Generate returns a new 8-character credential.
func Generate() string {
	b := make([]byte, length)
	_, _ = rand.Read(b)
	out := make([]byte, length)
	for i, v := range b {
		out[i] = charset[int(v)%len(charset)]
	}
	return string(out)
}
