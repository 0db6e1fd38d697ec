package store_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"secrettree"
	"secrettree/internal/domain"
	"secrettree/internal/store"
)

func fastScrypt() domain.KDFParams {
	p := domain.DefaultKDFParams()
	p.ScryptN = 1 << 10
	return p
}

func fastArgon() domain.KDFParams {
	p := domain.DefaultKDFParams()
	p.Algorithm = domain.KDFArgon2id
	p.Argon2Memory = 1024
	p.Argon2Threads = 1
	return p
}

func testSeed() *secrettree.Seed {
	var s secrettree.Seed
	for i := range s {
		s[i] = byte(i + 1)
	}
	return &s
}

func TestSeed_SaveLoad_OK(t *testing.T) {
	for name, params := range map[string]domain.KDFParams{"scrypt": fastScrypt(), "argon2id": fastArgon()} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), store.DefaultSeedFilename)
			var ss domain.SeedStore = store.NewSeedFileStore(path, params)

			if err := ss.SaveSeed("pass", testSeed()); err != nil {
				t.Fatalf("save seed: %v", err)
			}
			tree, err := ss.LoadSeed("pass")
			if err != nil {
				t.Fatalf("load seed: %v", err)
			}
			defer tree.Close()
			if !bytes.Equal(tree.Seed().Bytes(), testSeed().Bytes()) {
				t.Fatalf("mismatch after load")
			}
		})
	}
}

func TestSeed_WrongPassphrase_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultSeedFilename)
	ss := store.NewSeedFileStore(path, fastScrypt())

	if err := ss.SaveSeed("correct", testSeed()); err != nil {
		t.Fatalf("save seed: %v", err)
	}
	if _, err := ss.LoadSeed("wrong"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestSeed_FileIsEncryptedAndPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", store.DefaultSeedFilename)
	ss := store.NewSeedFileStore(path, fastScrypt())
	if err := ss.SaveSeed("pass", testSeed()); err != nil {
		t.Fatalf("save seed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bytes.Contains(b, testSeed().Bytes()) {
		t.Fatal("seed stored in the clear")
	}
	if !strings.Contains(string(b), `"kdf":"scrypt"`) {
		t.Fatalf("kdf params not recorded: %s", b)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", fi.Mode().Perm())
	}
}

func TestSeed_ParamsFromFileWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultSeedFilename)
	if err := store.NewSeedFileStore(path, fastArgon()).SaveSeed("pass", testSeed()); err != nil {
		t.Fatalf("save seed: %v", err)
	}
	tree, err := store.NewSeedFileStore(path, fastScrypt()).LoadSeed("pass")
	if err != nil {
		t.Fatalf("load with different config: %v", err)
	}
	tree.Close()
}

func TestSeed_Missing(t *testing.T) {
	ss := store.NewSeedFileStore(filepath.Join(t.TempDir(), "none"), fastScrypt())
	ok, err := ss.HasSeed()
	if err != nil || ok {
		t.Fatalf("HasSeed = %v, %v; want false, nil", ok, err)
	}
	if _, err := ss.LoadSeed("pass"); !errors.Is(err, store.ErrNoSeed) {
		t.Fatalf("expected ErrNoSeed, got %v", err)
	}
}

func TestSeed_Tampered_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultSeedFilename)
	ss := store.NewSeedFileStore(path, fastScrypt())
	if err := ss.SaveSeed("pass", testSeed()); err != nil {
		t.Fatalf("save seed: %v", err)
	}
	if _, err := ss.LoadSeed("pass"); err != nil {
		t.Fatalf("load: %v", err)
	}

	b, _ := os.ReadFile(path)
	// Flip one base64 character inside the ciphertext field.
	i := strings.Index(string(b), `"cipher":"`) + len(`"cipher":"`) + 2
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ss.LoadSeed("pass"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestSeed_UnknownKDF(t *testing.T) {
	p := fastScrypt()
	p.Algorithm = "md5"
	ss := store.NewSeedFileStore(filepath.Join(t.TempDir(), "s"), p)
	if err := ss.SaveSeed("pass", testSeed()); !errors.Is(err, store.ErrUnsupportedKDF) {
		t.Fatalf("expected ErrUnsupportedKDF, got %v", err)
	}
}

func TestSeed_TamperedCostRejected(t *testing.T) {
	cases := map[string]struct {
		params   domain.KDFParams
		old, new string
	}{
		"argon2 memory": {fastArgon(), `"argon2_memory":1024`, `"argon2_memory":4000000000`},
		"argon2 time":   {fastArgon(), `"argon2_time":1`, `"argon2_time":4000000000`},
		"scrypt N":      {fastScrypt(), `"scrypt_N":1024`, `"scrypt_N":1073741824`},
		"scrypt p":      {fastScrypt(), `"scrypt_p":1`, `"scrypt_p":100000`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), store.DefaultSeedFilename)
			ss := store.NewSeedFileStore(path, tc.params)
			if err := ss.SaveSeed("pass", testSeed()); err != nil {
				t.Fatalf("save seed: %v", err)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !strings.Contains(string(b), tc.old) {
				t.Fatalf("%s not found in %s", tc.old, b)
			}
			b = []byte(strings.Replace(string(b), tc.old, tc.new, 1))
			if err := os.WriteFile(path, b, 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}

			if _, err := ss.LoadSeed("pass"); !errors.Is(err, store.ErrKDFCost) {
				t.Fatalf("expected ErrKDFCost, got %v", err)
			}
		})
	}
}

func TestSeed_SaveRejectsExcessiveCost(t *testing.T) {
	p := fastScrypt()
	p.ScryptN = 1000 // not a power of two
	ss := store.NewSeedFileStore(filepath.Join(t.TempDir(), "s"), p)
	if err := ss.SaveSeed("pass", testSeed()); !errors.Is(err, store.ErrKDFCost) {
		t.Fatalf("expected ErrKDFCost, got %v", err)
	}
}
