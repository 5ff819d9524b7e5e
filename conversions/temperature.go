package conversions

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// CelsiusToKelvin converts °C to K.
func CelsiusToKelvin(celsius float64) float64 {
	return celsius + factors.KelvinOffset
}

// KelvinToCelsius converts K to °C.
func KelvinToCelsius(kelvin float64) float64 {
	return kelvin - factors.KelvinOffset
}

// FahrenheitToKelvin converts °F to K.
func FahrenheitToKelvin(fahrenheit float64) float64 {
	return CelsiusToKelvin(FahrenheitToCelsius(fahrenheit))
}

// KelvinToFahrenheit converts K to °F.
func KelvinToFahrenheit(kelvin float64) float64 {
	return CelsiusToFahrenheit(KelvinToCelsius(kelvin))
}
