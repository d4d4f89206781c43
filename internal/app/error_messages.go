// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// travel journal services, page handlers and the terminal client.
//
// All Msg* constants are human-readable strings shown to the user in alerts,
// inline banners and JSON error bodies, or matched against messages returned
// by the hosted backend. Keeping them in one place ensures consistent wording
// across pages.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the user cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is rendered when a trip, memory or profile does not exist
	// or is not visible to the caller.
	MsgNotFound = "not found"

	// MsgAuthRequired is the JSON error for API calls without a session.
	// Pages redirect to /login instead.
	MsgAuthRequired = "authentication required"

	// MsgUnexpectedError is the catch-all for failed avatar uploads.
	MsgUnexpectedError = "An unexpected error occurred"
)

// Upload validation. These exact strings are shown next to the file input.
const (
	MsgFileMustBeImage  = "File must be an image"
	MsgFileTooLarge     = "File size must be less than 5MB"
	MsgTooManyImages    = "You can only upload up to 5 images per memory."
	MsgSelectImageFile  = "Please select an image file"
	MsgFailedUploadFile = "Failed to upload %s: %s"
)

// Write failures shown as one-shot alerts when the backend gave no message.
const (
	MsgFailedCreateTrip    = "Failed to create trip. Please try again."
	MsgFailedUpdateTrip    = "Failed to update trip"
	MsgFailedDeleteTrip    = "Failed to delete trip"
	MsgFailedCreateMemory  = "Failed to create memory"
	MsgFailedUpdateMemory  = "Failed to update memory"
	MsgFailedDeleteMemory  = "Failed to delete memory"
	MsgFailedUpdateProfile = "Failed to update profile"
	MsgFailedUploadAvatar  = "Failed to upload avatar image"
	MsgFailedRemoveAvatar  = "Failed to remove avatar"
	MsgProfileUpdateError  = "An error occurred while updating the profile"
)

// Auth flow.
const (
	// MsgInvalidLoginCredentials is what the auth provider answers for a
	// wrong email/password pair, and what the login page shows.
	MsgInvalidLoginCredentials = "Invalid login credentials"

	// MsgEmailNotConfirmed is the auth provider message for accounts whose
	// confirmation link was not followed yet.
	MsgEmailNotConfirmed = "Email not confirmed"

	// MsgUserAlreadyRegistered is the auth provider message for a sign up
	// with a taken email.
	MsgUserAlreadyRegistered = "User already registered"

	// MsgCheckEmail is shown after sign up while confirmation is pending.
	MsgCheckEmail = "Account created! Please check your email to confirm your account."

	// MsgPasswordsDoNotMatch is shown by the register form.
	MsgPasswordsDoNotMatch = "Passwords don't match"

	// MsgLoginFailed is the login page fallback when the provider gave no
	// message.
	MsgLoginFailed = "Invalid email or password. Please try again."

	// MsgRegisterFailed is the register page fallback.
	MsgRegisterFailed = "Error creating account. Please try again."

	// MsgConfirmationFailed is shown when the emailed token cannot be verified.
	MsgConfirmationFailed = "Could not confirm your email. The link may have expired."
)

// Success notices shown once after a redirect.
const (
	MsgAvatarUpdated  = "Avatar updated successfully!"
	MsgAvatarRemoved  = "Avatar removed successfully!"
	MsgProfileUpdated = "Profile updated successfully!"
	MsgTripCreated    = "Trip created successfully!"
	MsgTripUpdated    = "Trip updated successfully!"
	MsgTripDeleted    = "Trip deleted"
	MsgMemoryCreated  = "Memory added"
	MsgMemoryUpdated  = "Memory updated successfully!"
	MsgMemoryDeleted  = "Memory deleted"
	MsgSignedOut      = "You have been signed out."
	MsgEmailConfirmed = "Email confirmed. Welcome!"
	MsgLoadFailed     = "Some of your journal could not be loaded. Please refresh the page."
)
