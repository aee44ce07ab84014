package user

// DeviceToken is a device session credential for social sign-in flows.
type DeviceToken struct {
	DeviceToken string `json:"deviceToken"`
	// DeviceEncryptionKey feeds Circle's mobile SDK.
	DeviceEncryptionKey string `json:"deviceEncryptionKey,omitempty"`
}

// EmailDeviceToken is a device session credential for email OTP sign-in
// flows.
type EmailDeviceToken struct {
	DeviceToken         string `json:"deviceToken"`
	DeviceEncryptionKey string `json:"deviceEncryptionKey,omitempty"`
	// OtpToken identifies the one-time password emailed to the user.
	OtpToken string `json:"otpToken,omitempty"`
}

// RefreshedUserToken is the result of RefreshUserToken.
type RefreshedUserToken struct {
	UserToken     string `json:"userToken"`
	EncryptionKey string `json:"encryptionKey,omitempty"`
	UserID        string `json:"userId,omitempty"`
	// RefreshToken replaces the one spent by the call.
	RefreshToken string `json:"refreshToken,omitempty"`
}

// DeviceTokenSocialRequest is the body of GetDeviceTokenSocial.
type DeviceTokenSocialRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	DeviceID       string `json:"deviceId"`
}

// DeviceTokenEmailRequest is the body of GetDeviceTokenEmail.
type DeviceTokenEmailRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	DeviceID       string `json:"deviceId"`
	Email          string `json:"email"`
}

// RefreshUserTokenRequest is the body of RefreshUserToken.
type RefreshUserTokenRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	RefreshToken   string `json:"refreshToken"`
	DeviceID       string `json:"deviceId"`
}

// ResendOtpRequest is the body of ResendOtp.
type ResendOtpRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	// OtpToken is the active OTP token being superseded.
	OtpToken string `json:"otpToken"`
	Email    string `json:"email"`
	DeviceID string `json:"deviceId"`
}
