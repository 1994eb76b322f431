package crc

import "sort"

// family groups one canonical Config under every alias name the catalogue
// recognizes for it — several well-known CRCs (e.g. CRC-32/ISO-HDLC and
// PKZIP, or CRC-16/ARC and CRC-IBM) share an identical parameter set under
// different names, so each family carries an arbitrary number of aliases
// instead of pinning one name to one configuration.
type family struct {
	cfg   Config
	names []string
}

// families lists the Rocksoft/CRC catalogue (reveng's "CRC Catalogue",
// widths up to 64 bits): about 110 configurations under about 170 names. It is intentionally a flat,
// ungrouped literal: a reader should be able to look up a width and poly
// without indirection.
var families = []family{
	{Config{3, 0x3, 0x0, false, false, 0x7}, []string{"crc-3-gsm"}},
	{Config{3, 0x3, 0x7, true, true, 0x0}, []string{"crc-3-rohc"}},

	{Config{4, 0x3, 0x0, true, true, 0x0}, []string{"crc-4-g-704", "crc-4-itu"}},
	{Config{4, 0x3, 0xF, false, false, 0xF}, []string{"crc-4-interlaken"}},

	{Config{5, 0x09, 0x09, false, false, 0x00}, []string{"crc-5-epc-c1g2", "crc-5-epc"}},
	{Config{5, 0x15, 0x00, true, true, 0x00}, []string{"crc-5-g-704", "crc-5-itu"}},
	{Config{5, 0x05, 0x1F, true, true, 0x1F}, []string{"crc-5-usb"}},

	{Config{6, 0x27, 0x3F, false, false, 0x00}, []string{"crc-6-cdma2000-a"}},
	{Config{6, 0x07, 0x3F, false, false, 0x00}, []string{"crc-6-cdma2000-b"}},
	{Config{6, 0x19, 0x00, true, true, 0x00}, []string{"crc-6-darc"}},
	{Config{6, 0x03, 0x00, true, true, 0x00}, []string{"crc-6-g-704", "crc-6-itu"}},
	{Config{6, 0x2F, 0x00, false, false, 0x3F}, []string{"crc-6-gsm"}},

	{Config{7, 0x09, 0x00, false, false, 0x00}, []string{"crc-7-mmc", "crc-7"}},
	{Config{7, 0x4F, 0x7F, true, true, 0x00}, []string{"crc-7-rohc"}},
	{Config{7, 0x45, 0x00, false, false, 0x00}, []string{"crc-7-umts"}},

	{Config{8, 0x07, 0x00, false, false, 0x00}, []string{"crc-8", "crc-8-smbus"}},
	{Config{8, 0x2F, 0xFF, false, false, 0xFF}, []string{"crc-8-autosar"}},
	{Config{8, 0xA7, 0x00, true, true, 0x00}, []string{"crc-8-bluetooth"}},
	{Config{8, 0x9B, 0xFF, false, false, 0x00}, []string{"crc-8-cdma2000"}},
	{Config{8, 0x39, 0x00, true, true, 0x00}, []string{"crc-8-darc"}},
	{Config{8, 0xD5, 0x00, false, false, 0x00}, []string{"crc-8-dvb-s2"}},
	{Config{8, 0x1D, 0x00, false, false, 0x00}, []string{"crc-8-gsm-a"}},
	{Config{8, 0x49, 0x00, false, false, 0xFF}, []string{"crc-8-gsm-b"}},
	{Config{8, 0x1D, 0xFF, false, false, 0x00}, []string{"crc-8-hitag"}},
	{Config{8, 0x07, 0x00, false, false, 0x55}, []string{"crc-8-i-432-1", "crc-8-itu"}},
	{Config{8, 0x1D, 0xFD, false, false, 0x00}, []string{"crc-8-i-code"}},
	{Config{8, 0x9B, 0x00, false, false, 0x00}, []string{"crc-8-lte"}},
	{Config{8, 0x31, 0x00, true, true, 0x00}, []string{"crc-8-maxim-dow", "crc-8-maxim", "dow-crc"}},
	{Config{8, 0x1D, 0xC7, false, false, 0x00}, []string{"crc-8-mifare-mad"}},
	{Config{8, 0x31, 0xFF, false, false, 0x00}, []string{"crc-8-nrsc-5"}},
	{Config{8, 0x2F, 0x00, false, false, 0x00}, []string{"crc-8-opensafety"}},
	{Config{8, 0x07, 0xFF, true, true, 0x00}, []string{"crc-8-rohc"}},
	{Config{8, 0x1D, 0xFF, false, false, 0xFF}, []string{"crc-8-sae-j1850"}},
	{Config{8, 0x1D, 0xFF, true, true, 0x00}, []string{"crc-8-tech-3250", "crc-8-aes", "crc-8-ebu"}},
	{Config{8, 0x9B, 0x00, true, true, 0x00}, []string{"crc-8-wcdma"}},

	{Config{10, 0x233, 0x000, false, false, 0x000}, []string{"crc-10", "crc-10-atm", "crc-10-i-610"}},
	{Config{10, 0x3D9, 0x3FF, false, false, 0x000}, []string{"crc-10-cdma2000"}},
	{Config{10, 0x175, 0x000, false, false, 0x3FF}, []string{"crc-10-gsm"}},

	{Config{11, 0x385, 0x01A, false, false, 0x000}, []string{"crc-11-flexray", "crc-11"}},
	{Config{11, 0x307, 0x000, false, false, 0x000}, []string{"crc-11-umts"}},

	{Config{12, 0xF13, 0xFFF, false, false, 0x000}, []string{"crc-12-cdma2000"}},
	{Config{12, 0x80F, 0x000, false, false, 0x000}, []string{"crc-12-dect", "x-crc-12"}},
	{Config{12, 0xD31, 0x000, false, false, 0xFFF}, []string{"crc-12-gsm"}},
	{Config{12, 0x80F, 0x000, false, true, 0x000}, []string{"crc-12-umts", "crc-12-3gpp"}},

	{Config{13, 0x1CF5, 0x0000, false, false, 0x0000}, []string{"crc-13-bbc"}},

	{Config{14, 0x0805, 0x0000, true, true, 0x0000}, []string{"crc-14-darc"}},
	{Config{14, 0x202D, 0x0000, false, false, 0x3FFF}, []string{"crc-14-gsm"}},

	{Config{15, 0x4599, 0x0000, false, false, 0x0000}, []string{"crc-15-can", "crc-15"}},
	{Config{15, 0x6815, 0x0000, false, false, 0x0001}, []string{"crc-15-mpt1327"}},

	{Config{16, 0x8005, 0x0000, true, true, 0x0000}, []string{"arc", "crc-16", "crc-16-arc", "crc-ibm", "crc-16-lha"}},
	{Config{16, 0xC867, 0xFFFF, false, false, 0x0000}, []string{"crc-16-cdma2000"}},
	{Config{16, 0x8005, 0xFFFF, false, false, 0x0000}, []string{"crc-16-cms"}},
	{Config{16, 0x8005, 0x800D, false, false, 0x0000}, []string{"crc-16-dds-110"}},
	{Config{16, 0x0589, 0x0000, false, false, 0x0001}, []string{"crc-16-dect-r"}},
	{Config{16, 0x0589, 0x0000, false, false, 0x0000}, []string{"crc-16-dect-x"}},
	{Config{16, 0x3D65, 0x0000, true, true, 0xFFFF}, []string{"crc-16-dnp"}},
	{Config{16, 0x3D65, 0x0000, false, false, 0xFFFF}, []string{"crc-16-en-13757"}},
	{Config{16, 0x1021, 0xFFFF, false, false, 0xFFFF}, []string{"crc-16-genibus", "crc-16-darc", "crc-16-epc", "crc-16-epc-c1g2", "crc-16-i-code"}},
	{Config{16, 0x1021, 0x0000, false, false, 0xFFFF}, []string{"crc-16-gsm"}},
	{Config{16, 0x1021, 0xFFFF, false, false, 0x0000}, []string{"crc-16-ibm-3740", "crc-16-autosar", "crc-16-ccitt-false"}},
	{Config{16, 0x1021, 0xFFFF, true, true, 0xFFFF}, []string{"crc-16-ibm-sdlc", "crc-16-iso-hdlc", "crc-16-iso-iec-14443-3-b", "crc-16-x-25", "x-25", "crc-b"}},
	{Config{16, 0x1021, 0xC6C6, true, true, 0x0000}, []string{"crc-16-iso-iec-14443-3-a", "crc-a"}},
	{Config{16, 0x1021, 0x0000, true, true, 0x0000}, []string{"crc-16-kermit", "crc-16-bluetooth", "crc-16-ccitt", "crc-16-ccitt-true", "crc-16-v-41-lsb", "crc-ccitt", "kermit"}},
	{Config{16, 0x6F63, 0x0000, false, false, 0x0000}, []string{"crc-16-lj1200"}},
	{Config{16, 0x5935, 0xFFFF, false, false, 0x0000}, []string{"crc-16-m17"}},
	{Config{16, 0x8005, 0x0000, true, true, 0xFFFF}, []string{"crc-16-maxim-dow", "crc-16-maxim"}},
	{Config{16, 0x1021, 0xFFFF, true, true, 0x0000}, []string{"crc-16-mcrf4xx"}},
	{Config{16, 0x8005, 0xFFFF, true, true, 0x0000}, []string{"crc-16-modbus", "modbus"}},
	{Config{16, 0x080B, 0xFFFF, true, true, 0x0000}, []string{"crc-16-nrsc-5"}},
	{Config{16, 0x5935, 0x0000, false, false, 0x0000}, []string{"crc-16-opensafety-a"}},
	{Config{16, 0x755B, 0x0000, false, false, 0x0000}, []string{"crc-16-opensafety-b"}},
	{Config{16, 0x1DCF, 0xFFFF, false, false, 0xFFFF}, []string{"crc-16-profibus", "crc-16-iec-61158-2"}},
	{Config{16, 0x1021, 0xB2AA, true, true, 0x0000}, []string{"crc-16-riello"}},
	{Config{16, 0x1021, 0x1D0F, false, false, 0x0000}, []string{"crc-16-spi-fujitsu", "crc-16-aug-ccitt"}},
	{Config{16, 0x8BB7, 0x0000, false, false, 0x0000}, []string{"crc-16-t10-dif"}},
	{Config{16, 0xA097, 0x0000, false, false, 0x0000}, []string{"crc-16-teledisk"}},
	{Config{16, 0x1021, 0x89EC, true, true, 0x0000}, []string{"crc-16-tms37157"}},
	{Config{16, 0x8005, 0x0000, false, false, 0x0000}, []string{"crc-16-umts", "crc-16-buypass", "crc-16-verifone"}},
	{Config{16, 0x8005, 0xFFFF, true, true, 0xFFFF}, []string{"crc-16-usb"}},
	{Config{16, 0x1021, 0x0000, false, false, 0x0000}, []string{"crc-16-xmodem", "crc-16-acorn", "crc-16-lte", "crc-16-v-41-msb", "xmodem", "zmodem"}},

	{Config{17, 0x1685B, 0x00000, false, false, 0x00000}, []string{"crc-17-can-fd"}},
	{Config{21, 0x102899, 0x000000, false, false, 0x000000}, []string{"crc-21-can-fd"}},

	{Config{24, 0x00065B, 0x555555, true, true, 0x000000}, []string{"crc-24-ble"}},
	{Config{24, 0x5D6DCB, 0xFEDCBA, false, false, 0x000000}, []string{"crc-24-flexray-a"}},
	{Config{24, 0x5D6DCB, 0xABCDEF, false, false, 0x000000}, []string{"crc-24-flexray-b"}},
	{Config{24, 0x328B63, 0xFFFFFF, false, false, 0xFFFFFF}, []string{"crc-24-interlaken"}},
	{Config{24, 0x864CFB, 0x000000, false, false, 0x000000}, []string{"crc-24-lte-a"}},
	{Config{24, 0x800063, 0x000000, false, false, 0x000000}, []string{"crc-24-lte-b"}},
	{Config{24, 0x864CFB, 0xB704CE, false, false, 0x000000}, []string{"crc-24-openpgp"}},
	{Config{24, 0x800063, 0xFFFFFF, false, false, 0xFFFFFF}, []string{"crc-24-os-9"}},

	{Config{30, 0x2030B9C7, 0x3FFFFFFF, false, false, 0x3FFFFFFF}, []string{"crc-30-cdma"}},
	{Config{31, 0x04C11DB7, 0x7FFFFFFF, false, false, 0x7FFFFFFF}, []string{"crc-31-philips"}},

	{Config{32, 0x814141AB, 0x00000000, false, false, 0x00000000}, []string{"crc-32-aixm"}},
	{Config{32, 0xF4ACFB13, 0xFFFFFFFF, true, true, 0xFFFFFFFF}, []string{"crc-32-autosar"}},
	{Config{32, 0xA833982B, 0xFFFFFFFF, true, true, 0xFFFFFFFF}, []string{"crc-32-base91-d"}},
	{Config{32, 0x04C11DB7, 0xFFFFFFFF, false, false, 0xFFFFFFFF}, []string{"crc-32-bzip2"}},
	{Config{32, 0x8001801B, 0x00000000, true, true, 0x00000000}, []string{"crc-32-cd-rom-edc"}},
	{Config{32, 0x04C11DB7, 0x00000000, false, false, 0xFFFFFFFF}, []string{"crc-32-cksum"}},
	{Config{32, 0x1EDC6F41, 0xFFFFFFFF, true, true, 0xFFFFFFFF}, []string{"crc-32-iscsi", "crc-32-base91-c", "crc-32-castagnoli", "crc-32-interlaken", "crc-32c"}},
	{Config{32, 0x04C11DB7, 0xFFFFFFFF, true, true, 0xFFFFFFFF}, []string{"crc-32", "crc-32-iso-hdlc", "crc-32-adccp", "crc-32-v-42", "crc-32-xz", "pkzip"}},
	{Config{32, 0x04C11DB7, 0xFFFFFFFF, true, true, 0x00000000}, []string{"crc-32-jamcrc"}},
	{Config{32, 0x741B8CD7, 0xFFFFFFFF, true, true, 0x00000000}, []string{"crc-32-mef"}},
	{Config{32, 0x04C11DB7, 0xFFFFFFFF, false, false, 0x00000000}, []string{"crc-32-mpeg-2"}},
	{Config{32, 0x000000AF, 0x00000000, false, false, 0x00000000}, []string{"crc-32-xfer"}},

	{Config{40, 0x0004820009, 0x0000000000, false, false, 0xFFFFFFFFFF}, []string{"crc-40-gsm"}},

	{Config{64, 0x42F0E1EBA9EA3693, 0x0000000000000000, false, false, 0x0000000000000000}, []string{"crc-64-ecma-182"}},
	{Config{64, 0x000000000000001B, 0xFFFFFFFFFFFFFFFF, true, true, 0xFFFFFFFFFFFFFFFF}, []string{"crc-64-go-iso"}},
	{Config{64, 0x259C84CBA6426349, 0xFFFFFFFFFFFFFFFF, true, true, 0x0000000000000000}, []string{"crc-64-ms"}},
	{Config{64, 0xAD93D23594C935A9, 0x0000000000000000, true, true, 0x0000000000000000}, []string{"crc-64-redis"}},
	{Config{64, 0x42F0E1EBA9EA3693, 0xFFFFFFFFFFFFFFFF, false, false, 0xFFFFFFFFFFFFFFFF}, []string{"crc-64-we"}},
	{Config{64, 0x42F0E1EBA9EA3693, 0xFFFFFFFFFFFFFFFF, true, true, 0xFFFFFFFFFFFFFFFF}, []string{"crc-64", "crc-64-xz", "crc-64-go-ecma"}},
}

type namedConfig struct {
	name string
	cfg  Config
}

// catalogue is the ASCII-sorted-by-name flattening of families, built once
// at init so FindConfig can binary search it.
var catalogue []namedConfig

func init() {
	for _, f := range families {
		for _, n := range f.names {
			catalogue = append(catalogue, namedConfig{n, f.cfg})
		}
	}
	sort.Slice(catalogue, func(i, j int) bool { return catalogue[i].name < catalogue[j].name })
}

// FindConfig performs a binary search over the sorted catalogue and returns
// the matching Config, or ok=false if name isn't in the catalogue. Go string
// equality is exact (unlike a C memcmp over a fixed-length buffer), so a
// short name such as "crc-16" never accidentally matches a longer entry
// like "crc-16-arc" that merely shares its prefix.
func FindConfig(name string) (cfg Config, ok bool) {
	i := sort.Search(len(catalogue), func(i int) bool { return catalogue[i].name >= name })
	if i < len(catalogue) && catalogue[i].name == name {
		return catalogue[i].cfg, true
	}
	return Config{}, false
}

// TemplatesAvailable returns every catalogue name mapped to its six-tuple
// configuration.
func TemplatesAvailable() map[string]Config {
	out := make(map[string]Config, len(catalogue))
	for _, nc := range catalogue {
		out[nc.name] = nc.cfg
	}
	return out
}
