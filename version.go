package creategodotrs

// Version is the current create-godotrs release.
const Version = "0.1.0"
