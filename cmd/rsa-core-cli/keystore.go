package main

import (
	"database/sql"
	"fmt"
	"math/big"
	"time"

	_ "github.com/mattn/go-sqlite3"

	rsacore "github.com/BackendStack21/rsa-core-go"
)

// Keystore persists named key pairs in a local sqlite database. The
// integers are stored as decimal strings; sqlite has no integer type
// wide enough for them.
type Keystore struct {
	db *sql.DB
}

// KeyInfo describes a stored key pair.
type KeyInfo struct {
	Name      string
	Bits      int
	CreatedAt time.Time
}

// OpenKeystore opens (creating if needed) the keystore at path.
func OpenKeystore(path string) (*Keystore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS keys (
		name TEXT PRIMARY KEY,
		bits INTEGER NOT NULL,
		e TEXT NOT NULL,
		n TEXT NOT NULL,
		d TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Keystore{db: db}, nil
}

// Close releases the underlying database handle.
func (ks *Keystore) Close() error {
	return ks.db.Close()
}

// Put stores a key pair under name. Names are unique; storing an
// existing name fails rather than silently replacing a key.
func (ks *Keystore) Put(name string, kp *rsacore.KeyPair) error {
	_, err := ks.db.Exec(
		"INSERT INTO keys (name, bits, e, n, d, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		name, kp.Bits(),
		kp.PublicKey.E.String(), kp.PublicKey.N.String(), kp.PrivateKey.D.String(),
		time.Now().UTC(),
	)
	return err
}

// Get loads both halves of the key pair stored under name.
func (ks *Keystore) Get(name string) (*rsacore.PublicKey, *rsacore.PrivateKey, error) {
	var eStr, nStr, dStr string
	err := ks.db.QueryRow("SELECT e, n, d FROM keys WHERE name = ?", name).
		Scan(&eStr, &nStr, &dStr)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("no key named %q", name)
	}
	if err != nil {
		return nil, nil, err
	}

	e, ok := new(big.Int).SetString(eStr, 10)
	if !ok {
		return nil, nil, fmt.Errorf("corrupt e for key %q", name)
	}
	n, ok := new(big.Int).SetString(nStr, 10)
	if !ok {
		return nil, nil, fmt.Errorf("corrupt n for key %q", name)
	}
	d, ok := new(big.Int).SetString(dStr, 10)
	if !ok {
		return nil, nil, fmt.Errorf("corrupt d for key %q", name)
	}

	return &rsacore.PublicKey{E: e, N: n}, &rsacore.PrivateKey{D: d, N: n}, nil
}

// List returns metadata for every stored key pair, oldest first.
func (ks *Keystore) List() ([]KeyInfo, error) {
	rows, err := ks.db.Query("SELECT name, bits, created_at FROM keys ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []KeyInfo
	for rows.Next() {
		var info KeyInfo
		if err := rows.Scan(&info.Name, &info.Bits, &info.CreatedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
