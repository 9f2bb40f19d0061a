package conan

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultUserChannel is the placeholder that Conan uses for recipe references
// without a user or channel.
const DefaultUserChannel = "_"

// Ref identifies a recipe, in the textual form
// NAME/VERSION@USER/CHANNEL.
type Ref struct {
	Name    string
	Version string
	User    string
	Channel string
}

// ParseRef parses a recipe reference string.
// Accepted forms:
//
//	name/version@user/channel
//	name/version@
//	version@user/channel (name is declared in the conanfile.py)
//	name/version
//
// Omitted or empty user and channel components default to "_".
func ParseRef(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("reference is empty")
	}

	ref := Ref{
		User:    DefaultUserChannel,
		Channel: DefaultUserChannel,
	}

	nvPart, ucPart, _ := strings.Cut(s, "@")

	if nvPart != "" {
		parts := strings.Split(nvPart, "/")
		switch len(parts) {
		case 1:
			ref.Version = parts[0]
		case 2:
			ref.Name = parts[0]
			ref.Version = parts[1]
		default:
			return nil, fmt.Errorf("invalid reference %q, expecting NAME/VERSION before '@'", s)
		}
	}

	if ucPart != "" {
		user, channel, _ := strings.Cut(ucPart, "/")
		if user != "" {
			ref.User = user
		}
		if channel != "" {
			ref.Channel = channel
		}
	}

	return &ref, nil
}

// String returns the reference in NAME/VERSION@USER/CHANNEL form.
// If user and channel are unset, NAME/VERSION@ is returned.
func (r *Ref) String() string {
	if !r.HasUserChannel() {
		return fmt.Sprintf("%s/%s@", r.Name, r.Version)
	}

	return fmt.Sprintf("%s/%s@%s/%s", r.Name, r.Version, r.User, r.Channel)
}

// HasUserChannel returns true if user or channel differ from the "_"
// placeholder.
func (r *Ref) HasUserChannel() bool {
	return r.User != DefaultUserChannel || r.Channel != DefaultUserChannel
}

// Validate returns an error if name or version are unset.
func (r *Ref) Validate() error {
	if r.Name == "" {
		return errors.New("recipe name is unset, it must be part of the reference or declared in the conanfile.py")
	}
	if r.Version == "" {
		return errors.New("recipe version is unset, it must be part of the reference or declared in the conanfile.py")
	}

	return nil
}
