package vos

import "fmt"

func ExampleNewMapEnvFromEnvList() {
	env := NewMapEnvFromEnvList([]string{"PATH=/bin", "E", "F=G=H", "PATH=/usr/bin"})

	fmt.Printf("Environ(): %q\n", env.Environ())
	fmt.Printf("Getenv(\"F\"): %q\n", env.Getenv("F"))

	// Output: Environ(): ["E=" "F=G=H" "PATH=/usr/bin"]
	// Getenv("F"): "G=H"
}

func ExampleMapEnv_Unsetenv() {
	env := NewMapEnv()
	env.Setenv("A", "B")
	env.Setenv("C", "D")

	fmt.Println("Before:", env.Environ())
	env.Unsetenv("A")
	fmt.Println("After:", env.Environ())

	// Output: Before: [A=B C=D]
	// After: [C=D]
}

func ExampleMapEnv_LookupEnv() {
	env := NewMapEnv()
	env.Setenv("PATH", "")

	val, ok := env.LookupEnv("PATH")
	fmt.Printf("Empty val: %q ok: %v\n", val, ok)
	val, ok = env.LookupEnv("HOME")
	fmt.Printf("Missing val: %q ok: %v\n", val, ok)

	// Output: Empty val: "" ok: true
	// Missing val: "" ok: false
}
