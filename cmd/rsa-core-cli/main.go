// Package main provides the rsa-core-cli command line interface: key
// generation into a local sqlite keystore, key export, and block-wise
// file encryption and decryption with the textbook RSA core.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"

	rsacore "github.com/BackendStack21/rsa-core-go"
	"github.com/BackendStack21/rsa-core-go/cipher"
	"github.com/BackendStack21/rsa-core-go/keygen"
	"github.com/BackendStack21/rsa-core-go/keyio"
)

const appName = "rsa-core-cli"

const defaultDBPath = "rsa-keys.db"

func usage() {
	fmt.Fprintf(os.Stderr, `%s %s - textbook RSA key management and encryption

Usage:
  %s keygen  -name NAME [-bits N] [-db PATH]
  %s list    [-db PATH]
  %s export  -name NAME [-private] [-db PATH]
  %s encrypt -name NAME -in FILE -out FILE [-db PATH]
  %s decrypt -name NAME -in FILE -out FILE [-db PATH]

WARNING: textbook RSA is deterministic and unpadded. Do not use for
anything beyond experimentation.
`, appName, rsacore.Version, appName, appName, appName, appName, appName)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "keygen":
		err = cmdKeygen(os.Args[2:])
	case "list":
		err = cmdList(os.Args[2:])
	case "export":
		err = cmdExport(os.Args[2:])
	case "encrypt":
		err = cmdCrypt(os.Args[2:], true)
	case "decrypt":
		err = cmdCrypt(os.Args[2:], false)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func cmdKeygen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	name := fs.String("name", "", "name to store the key pair under")
	bits := fs.Int("bits", 2048, "modulus bit length")
	dbPath := fs.String("db", defaultDBPath, "keystore path")
	fs.Parse(args)

	if *name == "" {
		return errors.New("keygen requires -name")
	}

	ks, err := OpenKeystore(*dbPath)
	if err != nil {
		return err
	}
	defer ks.Close()

	kp, err := keygen.Generate(*bits)
	if err != nil {
		return fmt.Errorf("generating key pair: %w", err)
	}
	if err := ks.Put(*name, kp); err != nil {
		return fmt.Errorf("storing key pair: %w", err)
	}

	fmt.Printf("stored %d-bit key pair %q\n", kp.Bits(), *name)
	fmt.Printf("fingerprint: %s\n", hex.EncodeToString(keyio.Fingerprint(&kp.PublicKey)))
	return nil
}

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", defaultDBPath, "keystore path")
	fs.Parse(args)

	ks, err := OpenKeystore(*dbPath)
	if err != nil {
		return err
	}
	defer ks.Close()

	infos, err := ks.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("keystore is empty")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-20s %5d bits  %s\n", info.Name, info.Bits, info.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	name := fs.String("name", "", "key pair to export")
	private := fs.Bool("private", false, "export the private key instead of the public key")
	dbPath := fs.String("db", defaultDBPath, "keystore path")
	fs.Parse(args)

	if *name == "" {
		return errors.New("export requires -name")
	}

	ks, err := OpenKeystore(*dbPath)
	if err != nil {
		return err
	}
	defer ks.Close()

	pub, priv, err := ks.Get(*name)
	if err != nil {
		return err
	}

	var doc []byte
	if *private {
		doc, err = keyio.ExportPrivateKey(priv)
	} else {
		doc, err = keyio.ExportPublicKey(pub)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(doc))
	return nil
}

func cmdCrypt(args []string, encrypt bool) error {
	verb := "decrypt"
	if encrypt {
		verb = "encrypt"
	}
	fs := flag.NewFlagSet(verb, flag.ExitOnError)
	name := fs.String("name", "", "key pair to use")
	inPath := fs.String("in", "", "input file")
	outPath := fs.String("out", "", "output file")
	dbPath := fs.String("db", defaultDBPath, "keystore path")
	fs.Parse(args)

	if *name == "" || *inPath == "" || *outPath == "" {
		return fmt.Errorf("%s requires -name, -in, and -out", verb)
	}

	ks, err := OpenKeystore(*dbPath)
	if err != nil {
		return err
	}
	defer ks.Close()

	pub, priv, err := ks.Get(*name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return err
	}

	var out []byte
	if encrypt {
		out, err = encryptBytes(pub, data)
	} else {
		out, err = decryptBytes(priv, data)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(*outPath, out, 0600)
}

// encryptBytes splits data into blocks below the modulus and encrypts
// each one. Every plaintext block is prefixed with a 0x01 marker byte
// before encoding so leading zero bytes survive the integer round trip;
// each ciphertext is left-padded to the modulus width so block
// boundaries are recoverable.
func encryptBytes(pub *rsacore.PublicKey, data []byte) ([]byte, error) {
	blockLen := cipher.MaxMessageLen(pub) - 1
	if blockLen < 1 {
		return nil, fmt.Errorf("modulus too small for block encryption")
	}
	modBytes := (pub.N.BitLen() + 7) / 8

	var out []byte
	for start := 0; start < len(data) || start == 0; start += blockLen {
		end := start + blockLen
		if end > len(data) {
			end = len(data)
		}
		block := make([]byte, 0, end-start+1)
		block = append(block, 0x01)
		block = append(block, data[start:end]...)

		c, err := cipher.Encrypt(pub, block)
		if err != nil {
			return nil, err
		}
		out = append(out, c.FillBytes(make([]byte, modBytes))...)
	}
	return out, nil
}

// decryptBytes reverses encryptBytes: it decrypts fixed-width
// ciphertext blocks and strips the 0x01 marker from each plaintext.
func decryptBytes(priv *rsacore.PrivateKey, data []byte) ([]byte, error) {
	modBytes := (priv.N.BitLen() + 7) / 8
	if len(data)%modBytes != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the %d-byte block size", len(data), modBytes)
	}

	var out []byte
	for start := 0; start < len(data); start += modBytes {
		c := cipher.EncodeMessage(data[start : start+modBytes])
		block, err := cipher.Decrypt(priv, c)
		if err != nil {
			return nil, err
		}
		if len(block) == 0 || block[0] != 0x01 {
			return nil, errors.New("corrupt block: missing marker byte")
		}
		out = append(out, block[1:]...)
	}
	return out, nil
}
