package acm

import "github.com/reoring/sdkmodel"

// CertificateStatus is the lifecycle state of a certificate.
type CertificateStatus string

const (
	CertificateStatusPendingValidation   CertificateStatus = "PENDING_VALIDATION"
	CertificateStatusIssued              CertificateStatus = "ISSUED"
	CertificateStatusInactive            CertificateStatus = "INACTIVE"
	CertificateStatusExpired             CertificateStatus = "EXPIRED"
	CertificateStatusValidationTimedOut  CertificateStatus = "VALIDATION_TIMED_OUT"
	CertificateStatusRevoked             CertificateStatus = "REVOKED"
	CertificateStatusFailed              CertificateStatus = "FAILED"
	CertificateStatusUnknownToSDKVersion CertificateStatus = ""
)

var certificateStatuses = sdkmodel.NewEnumSet(
	CertificateStatusPendingValidation,
	CertificateStatusIssued,
	CertificateStatusInactive,
	CertificateStatusExpired,
	CertificateStatusValidationTimedOut,
	CertificateStatusRevoked,
	CertificateStatusFailed,
)

// CertificateStatusFromValue resolves a wire value; nil yields nil.
func CertificateStatusFromValue(v *string) *CertificateStatus {
	return certificateStatuses.FromValue(v)
}

func (CertificateStatus) Values() []CertificateStatus { return certificateStatuses.KnownValues() }

func (e CertificateStatus) Value() (string, bool) { return sdkmodel.EnumValue(e) }

// KeyAlgorithm is the algorithm of a certificate's key pair.
type KeyAlgorithm string

const (
	KeyAlgorithmRsa1024             KeyAlgorithm = "RSA_1024"
	KeyAlgorithmRsa2048             KeyAlgorithm = "RSA_2048"
	KeyAlgorithmRsa3072             KeyAlgorithm = "RSA_3072"
	KeyAlgorithmRsa4096             KeyAlgorithm = "RSA_4096"
	KeyAlgorithmEcPrime256v1        KeyAlgorithm = "EC_prime256v1"
	KeyAlgorithmEcSecp384r1         KeyAlgorithm = "EC_secp384r1"
	KeyAlgorithmEcSecp521r1         KeyAlgorithm = "EC_secp521r1"
	KeyAlgorithmUnknownToSDKVersion KeyAlgorithm = ""
)

var keyAlgorithms = sdkmodel.NewEnumSet(
	KeyAlgorithmRsa1024,
	KeyAlgorithmRsa2048,
	KeyAlgorithmRsa3072,
	KeyAlgorithmRsa4096,
	KeyAlgorithmEcPrime256v1,
	KeyAlgorithmEcSecp384r1,
	KeyAlgorithmEcSecp521r1,
)

func KeyAlgorithmFromValue(v *string) *KeyAlgorithm { return keyAlgorithms.FromValue(v) }

func (KeyAlgorithm) Values() []KeyAlgorithm { return keyAlgorithms.KnownValues() }

func (e KeyAlgorithm) Value() (string, bool) { return sdkmodel.EnumValue(e) }

// KeyUsageName is an X.509 key usage.
type KeyUsageName string

const (
	KeyUsageNameDigitalSignature    KeyUsageName = "DIGITAL_SIGNATURE"
	KeyUsageNameNonRepudiation      KeyUsageName = "NON_REPUDIATION"
	KeyUsageNameKeyEncipherment     KeyUsageName = "KEY_ENCIPHERMENT"
	KeyUsageNameDataEncipherment    KeyUsageName = "DATA_ENCIPHERMENT"
	KeyUsageNameKeyAgreement        KeyUsageName = "KEY_AGREEMENT"
	KeyUsageNameCertificateSigning  KeyUsageName = "CERTIFICATE_SIGNING"
	KeyUsageNameCrlSigning          KeyUsageName = "CRL_SIGNING"
	KeyUsageNameEncipherOnly        KeyUsageName = "ENCIPHER_ONLY"
	KeyUsageNameDecipherOnly        KeyUsageName = "DECIPHER_ONLY"
	KeyUsageNameAny                 KeyUsageName = "ANY"
	KeyUsageNameCustom              KeyUsageName = "CUSTOM"
	KeyUsageNameUnknownToSDKVersion KeyUsageName = ""
)

var keyUsageNames = sdkmodel.NewEnumSet(
	KeyUsageNameDigitalSignature,
	KeyUsageNameNonRepudiation,
	KeyUsageNameKeyEncipherment,
	KeyUsageNameDataEncipherment,
	KeyUsageNameKeyAgreement,
	KeyUsageNameCertificateSigning,
	KeyUsageNameCrlSigning,
	KeyUsageNameEncipherOnly,
	KeyUsageNameDecipherOnly,
	KeyUsageNameAny,
	KeyUsageNameCustom,
)

func KeyUsageNameFromValue(v *string) *KeyUsageName { return keyUsageNames.FromValue(v) }

func (KeyUsageName) Values() []KeyUsageName { return keyUsageNames.KnownValues() }

func (e KeyUsageName) Value() (string, bool) { return sdkmodel.EnumValue(e) }

// ExtendedKeyUsageName is an X.509 extended key usage.
type ExtendedKeyUsageName string

const (
	ExtendedKeyUsageNameTLSWebServerAuthentication ExtendedKeyUsageName = "TLS_WEB_SERVER_AUTHENTICATION"
	ExtendedKeyUsageNameTLSWebClientAuthentication ExtendedKeyUsageName = "TLS_WEB_CLIENT_AUTHENTICATION"
	ExtendedKeyUsageNameCodeSigning                ExtendedKeyUsageName = "CODE_SIGNING"
	ExtendedKeyUsageNameEmailProtection            ExtendedKeyUsageName = "EMAIL_PROTECTION"
	ExtendedKeyUsageNameTimeStamping               ExtendedKeyUsageName = "TIME_STAMPING"
	ExtendedKeyUsageNameOcspSigning                ExtendedKeyUsageName = "OCSP_SIGNING"
	ExtendedKeyUsageNameIpsecEndSystem             ExtendedKeyUsageName = "IPSEC_END_SYSTEM"
	ExtendedKeyUsageNameIpsecTunnel                ExtendedKeyUsageName = "IPSEC_TUNNEL"
	ExtendedKeyUsageNameIpsecUser                  ExtendedKeyUsageName = "IPSEC_USER"
	ExtendedKeyUsageNameAny                        ExtendedKeyUsageName = "ANY"
	ExtendedKeyUsageNameNone                       ExtendedKeyUsageName = "NONE"
	ExtendedKeyUsageNameCustom                     ExtendedKeyUsageName = "CUSTOM"
	ExtendedKeyUsageNameUnknownToSDKVersion        ExtendedKeyUsageName = ""
)

var extendedKeyUsageNames = sdkmodel.NewEnumSet(
	ExtendedKeyUsageNameTLSWebServerAuthentication,
	ExtendedKeyUsageNameTLSWebClientAuthentication,
	ExtendedKeyUsageNameCodeSigning,
	ExtendedKeyUsageNameEmailProtection,
	ExtendedKeyUsageNameTimeStamping,
	ExtendedKeyUsageNameOcspSigning,
	ExtendedKeyUsageNameIpsecEndSystem,
	ExtendedKeyUsageNameIpsecTunnel,
	ExtendedKeyUsageNameIpsecUser,
	ExtendedKeyUsageNameAny,
	ExtendedKeyUsageNameNone,
	ExtendedKeyUsageNameCustom,
)

func ExtendedKeyUsageNameFromValue(v *string) *ExtendedKeyUsageName {
	return extendedKeyUsageNames.FromValue(v)
}

func (ExtendedKeyUsageName) Values() []ExtendedKeyUsageName {
	return extendedKeyUsageNames.KnownValues()
}

func (e ExtendedKeyUsageName) Value() (string, bool) { return sdkmodel.EnumValue(e) }

// SortBy is the key certificates are listed by.
type SortBy string

const (
	SortByCreatedAt           SortBy = "CREATED_AT"
	SortByUnknownToSDKVersion SortBy = ""
)

var sortBys = sdkmodel.NewEnumSet(SortByCreatedAt)

func SortByFromValue(v *string) *SortBy { return sortBys.FromValue(v) }

func (SortBy) Values() []SortBy { return sortBys.KnownValues() }

func (e SortBy) Value() (string, bool) { return sdkmodel.EnumValue(e) }

type SortOrder string

const (
	SortOrderAscending           SortOrder = "ASCENDING"
	SortOrderDescending          SortOrder = "DESCENDING"
	SortOrderUnknownToSDKVersion SortOrder = ""
)

var sortOrders = sdkmodel.NewEnumSet(SortOrderAscending, SortOrderDescending)

func SortOrderFromValue(v *string) *SortOrder { return sortOrders.FromValue(v) }

func (SortOrder) Values() []SortOrder { return sortOrders.KnownValues() }

func (e SortOrder) Value() (string, bool) { return sdkmodel.EnumValue(e) }

func enumPtr[E ~string](e E) *string {
	if e == "" {
		return nil
	}
	s := string(e)
	return &s
}
