package common

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"os"
)

var (
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey //served to the web client
)

const (
	salt = "x41%sMpl3p3d1A>>!?0sY9)?sd@df&*Ty)H23-7%#Pa;]k(" //password salt
)

//generate a key pair into pem files
func GenerateRsaKey(keySize int) {
	privateKey, _ = rsa.GenerateKey(rand.Reader, keySize)
	derText := x509.MarshalPKCS1PrivateKey(privateKey)
	block := pem.Block{
		Type:  "rsa private key",
		Bytes: derText,
	}
	fo, err := os.Create("privateKey.pem")
	if err != nil {
		panic(err)
	}
	defer fo.Close()
	pem.Encode(fo, &block)
	publicKey = &privateKey.PublicKey
	derStream, _ := x509.MarshalPKIXPublicKey(publicKey)
	block = pem.Block{
		Type:  "rsa public key",
		Bytes: derStream,
	}
	fo, _ = os.Create("publicKey.pem")
	defer fo.Close()
	pem.Encode(fo, &block)
}

func initRsaKeys(rsaCfg H) error {
	privateKeyStr, ok := rsaCfg["privateKey"].(string)
	if !ok {
		return errors.New("missing rsa private key")
	}
	block, _ := pem.Decode([]byte(privateKeyStr))
	var err error
	privateKey, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return err
	}
	return nil
}

func RSAEncrypt(text []byte) []byte {
	cipherText, _ := rsa.EncryptPKCS1v15(rand.Reader, publicKey, text)
	return cipherText
}

//decrypt with the private key, nil on failure
func RSADecrypt(cipherText string) []byte {
	b, _ := base64.StdEncoding.DecodeString(cipherText)
	if plainText, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, b); err == nil {
		return plainText
	}
	return nil
}

//salted MD5 of a user password
func GetMD5Password(pwd string) string {
	return GetMD5OfStr(pwd + salt)
}

//decrypt the transported password, then hash it; empty string on failure
func PassWordHandle(cipherPwd string) string {
	pwd := RSADecrypt(cipherPwd)
	if pwd == nil {
		return ""
	}
	return GetMD5Password(string(pwd))
}
