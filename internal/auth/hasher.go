package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword gera o hash bcrypt da senha. O salt e o custo ficam
// embutidos no próprio hash, então nada além dele precisa ser guardado.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword compara a senha em texto puro com o hash armazenado.
// Hash malformado conta como senha errada, nunca vira erro pro caller.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
