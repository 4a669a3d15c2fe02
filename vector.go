package vecmath

//go:generate go run ./internal/cmd/vecgen -o vector_gen.go -pkg vecmath
