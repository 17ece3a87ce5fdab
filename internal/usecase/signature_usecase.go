package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase/interfaces"
)

const defaultSignatureExpiryDays = 14

// SignatureRequestInput carries a signature invitation.
type SignatureRequestInput struct {
	SignerEmail     string
	Role            entities.SignerRole
	SignatureType   string
	WitnessRequired bool
	ExpiryDays      int
	ReminderDays    int
	RequestedBy     string
}

// SignatureRequestResult returns the updated contract plus the secrets the
// notification channel delivers to the signer. The signing link carries an
// opaque single-use token; the verification code travels separately and is
// never embedded in the link.
type SignatureRequestResult struct {
	Contract         entities.Contract
	SignatureID      string
	SigningLink      string
	VerificationCode string
}

// ProcessSignatureInput is a signer's submission.
type ProcessSignatureInput struct {
	SignatureData    string
	VerificationCode string
	IP               string
	UserAgent        string
}

// SignatureCheck is one ordered verification step run after the code has
// matched. All checks must pass for the signature to count as signed; any
// failure marks it invalid instead.
type SignatureCheck interface {
	Name() string
	Verify(c entities.Contract, sig entities.Signature, in ProcessSignatureInput, now time.Time) error
}

type ISignatureUseCase interface {
	RequestSignature(ctx context.Context, contractID string, in SignatureRequestInput) (SignatureRequestResult, error)
	ProcessSignature(ctx context.Context, contractID, signatureID string, in ProcessSignatureInput) (entities.Contract, error)
	ExpirePendingSignatures(ctx context.Context) (int, error)
}

type SignatureUseCase struct {
	contracts interfaces.IContractRepository
	audit     interfaces.IAuditRecorder
	checks    []SignatureCheck
	linkBase  string
	now       Clock
	newID     IDGenerator
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(contracts interfaces.IContractRepository, audit interfaces.IAuditRecorder, linkBase string) *SignatureUseCase {
	return &SignatureUseCase{
		contracts: contracts,
		audit:     audit,
		checks:    defaultSignatureChecks(),
		linkBase:  strings.TrimRight(linkBase, "/"),
		now:       defaultClock,
		newID:     defaultIDGenerator,
	}
}

// WithChecks replaces the ordered verification checks. Test hook.
func (u *SignatureUseCase) WithChecks(checks ...SignatureCheck) *SignatureUseCase {
	u.checks = checks
	return u
}

// WithClock overrides the time source. Test hook.
func (u *SignatureUseCase) WithClock(c Clock) *SignatureUseCase {
	u.now = c
	return u
}

func (u *SignatureUseCase) RequestSignature(ctx context.Context, contractID string, in SignatureRequestInput) (SignatureRequestResult, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return SignatureRequestResult{}, ErrInvalidContractID
	}
	email := strings.TrimSpace(strings.ToLower(in.SignerEmail))
	if email == "" {
		return SignatureRequestResult{}, newValidationError("signerEmail is required")
	}

	code, err := newSecret(8)
	if err != nil {
		return SignatureRequestResult{}, fmt.Errorf("request signature: generate code: %w", err)
	}
	token, err := newSecret(32)
	if err != nil {
		return SignatureRequestResult{}, fmt.Errorf("request signature: generate token: %w", err)
	}

	expiryDays := in.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = defaultSignatureExpiryDays
	}

	now := u.now()
	var signatureID string
	updated, err := u.contracts.Update(ctx, contractID, in.RequestedBy, func(c *entities.Contract) error {
		sig := c.SignatureByEmail(email)
		if sig == nil {
			// Witnesses and guarantors are optional signers added on demand.
			if in.Role != entities.SignerRoleWitness && in.Role != entities.SignerRoleGuarantor {
				return ErrSignatureNotFound
			}
			c.Signatures = append(c.Signatures, entities.Signature{
				ID:          u.newID(),
				SignerEmail: email,
				Role:        in.Role,
				Status:      entities.SignatureStatusPending,
			})
			sig = &c.Signatures[len(c.Signatures)-1]
		}

		sig.Status = entities.SignatureStatusPending
		sig.Type = in.SignatureType
		sig.WitnessRequired = in.WitnessRequired
		sig.VerificationCodeHash = hashSecret(code)
		sig.SigningTokenHash = hashSecret(token)
		requestedAt := now
		sig.RequestedAt = &requestedAt
		expiresAt := now.AddDate(0, 0, expiryDays)
		sig.ExpiresAt = &expiresAt
		if in.ReminderDays > 0 {
			reminderAt := now.AddDate(0, 0, in.ReminderDays)
			sig.ReminderAt = &reminderAt
		}
		signatureID = sig.ID

		if c.Status == entities.ContractStatusDraft {
			c.Status = entities.ContractStatusPendingSignature
		}
		return nil
	})
	if err != nil {
		return SignatureRequestResult{}, err
	}

	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      "signature.requested",
		Detail:      fmt.Sprintf("signature requested from %s (%s), expires %s", email, in.Role, now.AddDate(0, 0, expiryDays).Format(time.RFC3339)),
		PerformedBy: in.RequestedBy,
		PerformedAt: now,
	})

	log.Printf("[signature][usecase] requested contract_id=%s signature_id=%s role=%s", contractID, signatureID, in.Role)
	return SignatureRequestResult{
		Contract:         updated,
		SignatureID:      signatureID,
		SigningLink:      fmt.Sprintf("%s/contracts/%s/signatures/%s/sign?token=%s", u.linkBase, contractID, signatureID, token),
		VerificationCode: code,
	}, nil
}

func (u *SignatureUseCase) ProcessSignature(ctx context.Context, contractID, signatureID string, in ProcessSignatureInput) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	// Verify against the stored hash before mutating anything: a wrong code
	// must leave the contract untouched.
	current, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	if current.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	sig := current.SignatureByID(signatureID)
	if sig == nil {
		return entities.Contract{}, ErrSignatureNotFound
	}
	if !secretMatches(sig.VerificationCodeHash, in.VerificationCode) {
		log.Printf("[signature][usecase] verification code mismatch contract_id=%s signature_id=%s ip=%s", contractID, signatureID, in.IP)
		return entities.Contract{}, ErrInvalidVerification
	}

	now := u.now()
	checkFailure := ""
	for _, check := range u.checks {
		if err := check.Verify(current, *sig, in, now); err != nil {
			checkFailure = fmt.Sprintf("%s: %v", check.Name(), err)
			log.Printf("[signature][usecase] check failed contract_id=%s signature_id=%s check=%s err=%v", contractID, signatureID, check.Name(), err)
			break
		}
	}

	var signerEmail string
	updated, err := u.contracts.Update(ctx, contractID, sig.SignerEmail, func(c *entities.Contract) error {
		s := c.SignatureByID(signatureID)
		if s == nil {
			return ErrSignatureNotFound
		}
		signerEmail = s.SignerEmail

		if checkFailure != "" {
			// A failed check never downgrades an already signed record.
			if s.Status != entities.SignatureStatusSigned {
				s.Status = entities.SignatureStatusInvalid
				s.SignedFromIP = in.IP
				s.UserAgent = in.UserAgent
			}
			return nil
		}

		s.Status = entities.SignatureStatusSigned
		s.SignatureData = in.SignatureData
		signedAt := now
		s.SignedAt = &signedAt
		s.SignedFromIP = in.IP
		s.UserAgent = in.UserAgent
		s.VerificationCodeHash = ""
		s.SigningTokenHash = ""

		// Late optional signers (witness, guarantor) may sign after the
		// contract moved on; only recompute status while still signing.
		if c.Status == entities.ContractStatusPendingSignature || c.Status == entities.ContractStatusPartiallySigned {
			next := c.SignatureDerivedStatus()
			if next != c.Status {
				c.Status = next
			}
			if next == entities.ContractStatusFullySigned && c.SignedAt == nil {
				allSigned := now
				c.SignedAt = &allSigned
			}
		}
		return nil
	})
	if err != nil {
		return entities.Contract{}, err
	}

	action, detail := "signature.signed", fmt.Sprintf("%s signed from %s (%s) at %s", signerEmail, in.IP, in.UserAgent, now.Format(time.RFC3339))
	if checkFailure != "" {
		action, detail = "signature.rejected", fmt.Sprintf("submission by %s from %s (%s) rejected: %s", signerEmail, in.IP, in.UserAgent, checkFailure)
	}
	u.audit.Record(ctx, entities.AuditEntry{
		ID:          u.newID(),
		ContractID:  contractID,
		Action:      action,
		Detail:      detail,
		PerformedBy: signerEmail,
		PerformedAt: now,
		Metadata:    map[string]string{"ip": in.IP, "user_agent": in.UserAgent},
	})

	log.Printf("[signature][usecase] processed contract_id=%s signature_id=%s status=%s", contractID, signatureID, updated.Status)
	return updated, nil
}

// ExpirePendingSignatures transitions overdue pending signature requests to
// expired. Run periodically by the sweeper started at boot.
func (u *SignatureUseCase) ExpirePendingSignatures(ctx context.Context) (int, error) {
	contracts, err := u.contracts.ListByStatuses(ctx, []entities.ContractStatus{
		entities.ContractStatusPendingSignature,
		entities.ContractStatusPartiallySigned,
	})
	if err != nil {
		return 0, storageError("expire pending signatures", err)
	}

	now := u.now()
	expired := 0
	for _, c := range contracts {
		stale := false
		for _, s := range c.Signatures {
			if s.Status == entities.SignatureStatusPending && s.ExpiresAt != nil && s.ExpiresAt.Before(now) {
				stale = true
				break
			}
		}
		if !stale {
			continue
		}

		_, err := u.contracts.Update(ctx, c.ID, "signature-sweeper", func(c *entities.Contract) error {
			for i := range c.Signatures {
				s := &c.Signatures[i]
				if s.Status == entities.SignatureStatusPending && s.ExpiresAt != nil && s.ExpiresAt.Before(now) {
					s.Status = entities.SignatureStatusExpired
					s.VerificationCodeHash = ""
					s.SigningTokenHash = ""
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("[signature][sweep] expire failed contract_id=%s err=%v", c.ID, err)
			continue
		}
		expired++
		u.audit.Record(ctx, entities.AuditEntry{
			ID:          u.newID(),
			ContractID:  c.ID,
			Action:      "signature.expired",
			Detail:      "pending signature requests expired by sweep",
			PerformedBy: "signature-sweeper",
			PerformedAt: now,
		})
	}
	if expired > 0 {
		log.Printf("[signature][sweep] expired_contracts=%d scanned=%d", expired, len(contracts))
	}
	return expired, nil
}

func defaultSignatureChecks() []SignatureCheck {
	return []SignatureCheck{identityCheck{}, integrityCheck{}, timestampCheck{}}
}

// identityCheck confirms the record belongs to a known signer that is still
// awaiting a signature.
type identityCheck struct{}

func (identityCheck) Name() string { return "identity" }

func (identityCheck) Verify(_ entities.Contract, sig entities.Signature, _ ProcessSignatureInput, _ time.Time) error {
	if sig.SignerEmail == "" {
		return errors.New("signer has no email on record")
	}
	if sig.Status == entities.SignatureStatusSigned {
		return errors.New("signature already recorded")
	}
	return nil
}

// integrityCheck confirms the submission carries usable signature data.
type integrityCheck struct{}

func (integrityCheck) Name() string { return "integrity" }

func (integrityCheck) Verify(_ entities.Contract, _ entities.Signature, in ProcessSignatureInput, _ time.Time) error {
	if strings.TrimSpace(in.SignatureData) == "" {
		return errors.New("empty signature data")
	}
	return nil
}

// timestampCheck confirms the request window is still open.
type timestampCheck struct{}

func (timestampCheck) Name() string { return "timestamp" }

func (timestampCheck) Verify(_ entities.Contract, sig entities.Signature, _ ProcessSignatureInput, now time.Time) error {
	if sig.RequestedAt == nil {
		return errors.New("signature was never requested")
	}
	if sig.ExpiresAt != nil && sig.ExpiresAt.Before(now) {
		return ErrSignatureExpired
	}
	return nil
}

func newSecret(bytes int) (string, error) {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashSecret(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func secretMatches(storedHash, presented string) bool {
	if storedHash == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(hashSecret(presented)), []byte(storedHash)) == 1
}
