package authnats

import (
	"fmt"

	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nkeys"
)

// NKeyOption builds the NATS connection option for an nkey seed. An empty
// seed yields no option: the bus connects unauthenticated.
func NKeyOption(seed string) ([]nc.Option, error) {
	if seed == "" {
		return nil, nil
	}

	kp, err := nkeys.FromSeed([]byte(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to parse nkey seed: %w", err)
	}

	pub, err := kp.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to derive nkey public key: %w", err)
	}

	return []nc.Option{nc.Nkey(pub, func(nonce []byte) ([]byte, error) {
		return kp.Sign(nonce)
	})}, nil
}
