package service

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestSimulateMintFormat(t *testing.T) {
	s := &CertificateService{rand: rand.New(rand.NewSource(1))}

	for i := 0; i < 100; i++ {
		txHash, tokenID := s.simulateMint()

		if !strings.HasPrefix(txHash, "0x") || len(txHash) != 66 {
			t.Fatalf("Expected 0x-prefixed 64-hex tx hash, got %q", txHash)
		}
		for _, c := range txHash[2:] {
			if !strings.ContainsRune("0123456789abcdef", c) {
				t.Fatalf("Non-hex character %q in tx hash %q", c, txHash)
			}
		}

		n, err := strconv.Atoi(tokenID)
		if err != nil {
			t.Fatalf("Token id %q is not numeric: %v", tokenID, err)
		}
		if n < 0 || n >= 1000000 {
			t.Fatalf("Token id %d outside [0, 1000000)", n)
		}
	}
}

func TestSimulateMintVaries(t *testing.T) {
	s := &CertificateService{rand: rand.New(rand.NewSource(2))}

	first, _ := s.simulateMint()
	second, _ := s.simulateMint()
	if first == second {
		t.Error("Expected consecutive simulated mints to produce different hashes")
	}
}
