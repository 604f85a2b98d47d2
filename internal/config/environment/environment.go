package environment

import "os"

// Environment предоставляет доступ к переменным среды процесса.
type Environment struct {
}

// New создает экземпляр Environment.
func New() Environment {
	return Environment{}
}

// LookupEnv возвращает значение переменной среды по ключу, если переменная существует.
func (env Environment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map задает переменные среды явно.
type Map map[string]string

// LookupEnv возвращает значение по ключу, если оно задано.
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
