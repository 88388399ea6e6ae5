package typeid

import "strings"

// Storage is the bitset of storage-class, qualifier, and linkage bits.
type Storage uint64

const (
	StorageExtern Storage = 1 << iota
	StorageExternC
	StorageStatic
	StorageRegister
	StorageTypedef
	StorageFriend
	StorageInline
	StorageVirtual
	StoragePureVirtual
	StorageExplicit
	StorageMutable
	StorageConstexpr
	StorageConsteval
	StorageConstinit
	StorageAtomic
	StorageConst
	StorageVolatile
	StorageRestrict
	StorageRefQualifier    // &
	StorageRvalueRefQualifier // &&
	StorageThrow
	StorageNoexcept
	StorageDefault
	StorageDelete
	StorageFinal
	StorageOverride
	StorageArrayStatic // "static" inside an array dimension, e.g. int a[static 2]
	StorageArrayQualified
	StorageThis
	StorageUPCShared
	StorageUPCRelaxed
	StorageUPCStrict
)

var storageNames = map[Storage]string{
	StorageExtern:             "extern",
	StorageExternC:            `extern "C"`,
	StorageStatic:             "static",
	StorageRegister:           "register",
	StorageTypedef:            "typedef",
	StorageFriend:             "friend",
	StorageInline:             "inline",
	StorageVirtual:            "virtual",
	StoragePureVirtual:        "pure virtual",
	StorageExplicit:           "explicit",
	StorageMutable:            "mutable",
	StorageConstexpr:          "constexpr",
	StorageConsteval:          "consteval",
	StorageConstinit:          "constinit",
	StorageAtomic:             "_Atomic",
	StorageConst:              "const",
	StorageVolatile:           "volatile",
	StorageRestrict:           "restrict",
	StorageRefQualifier:       "&",
	StorageRvalueRefQualifier: "&&",
	StorageThrow:              "throw",
	StorageNoexcept:           "noexcept",
	StorageDefault:            "= default",
	StorageDelete:             "= delete",
	StorageFinal:              "final",
	StorageOverride:           "override",
	StorageArrayStatic:        "static",
	StorageArrayQualified:     "qualified array",
	StorageThis:               "this",
	StorageUPCShared:          "shared",
	StorageUPCRelaxed:         "relaxed",
	StorageUPCStrict:          "strict",
}

// NonEmpty is any storage bit that makes a type "non-empty" in the sense of
// §4.G.array ("size-kind = none with non-empty storage is illegal") and
// §4.G.type-pass ("non-array node with non-empty storage bit is illegal"):
// qualifiers and specifiers that only make sense attached to an object or
// function, not a bare type name.
const NonEmpty = StorageExtern | StorageExternC | StorageStatic | StorageRegister |
	StorageTypedef | StorageFriend | StorageInline | StorageVirtual | StoragePureVirtual |
	StorageExplicit | StorageMutable | StorageConstexpr | StorageConsteval | StorageConstinit

func (s Storage) Has(mask Storage) bool      { return s&mask == mask }
func (s Storage) IsAny(mask Storage) bool    { return s&mask != 0 }
func (s Storage) Union(o Storage) Storage     { return s | o }
func (s Storage) Intersect(o Storage) Storage { return s & o }
func (s Storage) Complement() Storage         { return ^s }

func (s Storage) String() string {
	if s == 0 {
		return ""
	}
	var parts []string
	for bit := Storage(1); bit != 0 && bit <= StorageUPCStrict; bit <<= 1 {
		if s&bit != 0 {
			if name, ok := storageNames[bit]; ok {
				parts = append(parts, name)
			}
		}
	}
	return strings.Join(parts, " ")
}
