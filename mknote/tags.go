package mknote

import "github.com/cul/imgprops/tiff"

// nikonNewerTags covers the maker notes of Nikon D-series and later Coolpix cameras.
var nikonNewerTags = tiff.Dict{
	0x0001: {Name: "MakernoteVersion", Rule: tiff.Callback(tiff.FilteredASCII)},
	0x0002: {Name: "ISOSetting", Rule: tiff.Callback(tiff.FilteredASCII)},
	0x0003: {Name: "ColorMode"},
	0x0004: {Name: "Quality"},
	0x0005: {Name: "Whitebalance"},
	0x0006: {Name: "ImageSharpening"},
	0x0007: {Name: "FocusMode"},
	0x0008: {Name: "FlashSetting"},
	0x0009: {Name: "AutoFlashMode"},
	0x000B: {Name: "WhiteBalanceBias"},
	0x000C: {Name: "WhiteBalanceRBCoeff"},
	0x000D: {Name: "ProgramShift", Rule: tiff.Callback(nikonEVBias)},
	0x000E: {Name: "ExposureDifference", Rule: tiff.Callback(nikonEVBias)},
	0x000F: {Name: "ISOSelection"},
	0x0010: {Name: "DataDump"},
	0x0011: {Name: "NikonPreview"},
	0x0012: {Name: "FlashCompensation", Rule: tiff.Callback(nikonEVBias)},
	0x0013: {Name: "ISOSpeedRequested"},
	0x0016: {Name: "PhotoCornerCoordinates"},
	0x0018: {Name: "FlashBracketCompensationApplied", Rule: tiff.Callback(nikonEVBias)},
	0x0019: {Name: "AEBracketCompensationApplied"},
	0x001A: {Name: "ImageProcessing"},
	0x001B: {Name: "CropHiSpeed"},
	0x001D: {Name: "SerialNumber"},
	0x001E: {Name: "ColorSpace"},
	0x001F: {Name: "VRInfo"},
	0x0020: {Name: "ImageAuthentication"},
	0x0022: {Name: "ActiveDLighting"},
	0x0023: {Name: "PictureControl"},
	0x0024: {Name: "WorldTime"},
	0x0025: {Name: "ISOInfo"},
	0x0080: {Name: "ImageAdjustment"},
	0x0081: {Name: "ToneCompensation"},
	0x0082: {Name: "AuxiliaryLens"},
	0x0083: {Name: "LensType"},
	0x0084: {Name: "LensMinMaxFocalMaxAperture"},
	0x0085: {Name: "ManualFocusDistance"},
	0x0086: {Name: "DigitalZoomFactor"},
	0x0087: {Name: "FlashMode", Rule: tiff.Lookup{
		0: "Did Not Fire",
		1: "Fired, Manual",
		7: "Fired, External",
		8: "Fired, Commander Mode ",
		9: "Fired, TTL Mode",
	}},
	0x0088: {Name: "AFFocusPosition", Rule: tiff.Lookup{
		0:    "Center",
		256:  "Top",
		512:  "Bottom",
		768:  "Left",
		1024: "Right",
	}},
	0x0089: {Name: "BracketingMode", Rule: tiff.Lookup{
		0:  "Single frame, no bracketing",
		1:  "Continuous, no bracketing",
		2:  "Timer, no bracketing",
		16: "Single frame, exposure bracketing",
		17: "Continuous, exposure bracketing",
		18: "Timer, exposure bracketing",
		64: "Single frame, white balance bracketing",
		65: "Continuous, white balance bracketing",
		66: "Timer, white balance bracketing",
	}},
	0x008A: {Name: "AutoBracketRelease"},
	0x008B: {Name: "LensFStops"},
	0x008C: {Name: "NEFCurve1"},
	0x008D: {Name: "ColorMode"},
	0x008F: {Name: "SceneMode"},
	0x0090: {Name: "LightingType"},
	0x0091: {Name: "ShotInfo"},
	0x0092: {Name: "HueAdjustment"},
	0x0093: {Name: "Compression"},
	0x0094: {Name: "Saturation", Rule: tiff.Lookup{
		-3: "B&W",
		-2: "-2",
		-1: "-1",
		0:  "0",
		1:  "1",
		2:  "2",
	}},
	0x0095: {Name: "NoiseReduction"},
	0x0096: {Name: "NEFCurve2"},
	0x0097: {Name: "ColorBalance"},
	0x0098: {Name: "LensData"},
	0x0099: {Name: "RawImageCenter"},
	0x009A: {Name: "SensorPixelSize"},
	0x009C: {Name: "Scene Assist"},
	0x009E: {Name: "RetouchHistory"},
	0x00A0: {Name: "SerialNumber"},
	0x00A2: {Name: "ImageDataSize"},
	0x00A5: {Name: "ImageCount"},
	0x00A6: {Name: "DeletedImageCount"},
	0x00A7: {Name: "TotalShutterReleases"},
	0x00A8: {Name: "FlashInfo"},
	0x00A9: {Name: "ImageOptimization"},
	0x00AA: {Name: "Saturation"},
	0x00AB: {Name: "DigitalVariProgram"},
	0x00AC: {Name: "ImageStabilization"},
	0x00AD: {Name: "Responsive AF"},
	0x00B0: {Name: "MultiExposure"},
	0x00B1: {Name: "HighISONoiseReduction"},
	0x00B7: {Name: "AFInfo"},
	0x00B8: {Name: "FileInfo"},
	0x0100: {Name: "DigitalICE"},
	0x0103: {Name: "PreviewCompression", Rule: tiff.Lookup{
		1:     "Uncompressed",
		2:     "CCITT 1D",
		3:     "T4/Group 3 Fax",
		4:     "T6/Group 4 Fax",
		5:     "LZW",
		6:     "JPEG (old-style)",
		7:     "JPEG",
		8:     "Adobe Deflate",
		9:     "JBIG B&W",
		10:    "JBIG Color",
		32766: "Next",
		32769: "Epson ERF Compressed",
		32771: "CCIRLEW",
		32773: "PackBits",
		32809: "Thunderscan",
		32895: "IT8CTPAD",
		32896: "IT8LW",
		32897: "IT8MP",
		32898: "IT8BL",
		32908: "PixarFilm",
		32909: "PixarLog",
		32946: "Deflate",
		32947: "DCS",
		34661: "JBIG",
		34676: "SGILog",
		34677: "SGILog24",
		34712: "JPEG 2000",
		34713: "Nikon NEF Compressed",
		65000: "Kodak DCR Compressed",
		65535: "Pentax PEF Compressed",
	}},
	0x0201: {Name: "PreviewImageStart"},
	0x0202: {Name: "PreviewImageLength"},
	0x0213: {Name: "PreviewYCbCrPositioning", Rule: tiff.Lookup{
		1: "Centered",
		2: "Co-sited",
	}},
}

// nikonOlderTags covers the "Nikon\x00\x01" notes of early Coolpix cameras.
var nikonOlderTags = tiff.Dict{
	0x0003: {Name: "Quality", Rule: tiff.Lookup{
		1: "VGA Basic",
		2: "VGA Normal",
		3: "VGA Fine",
		4: "SXGA Basic",
		5: "SXGA Normal",
		6: "SXGA Fine",
	}},
	0x0004: {Name: "ColorMode", Rule: tiff.Lookup{
		1: "Color",
		2: "Monochrome",
	}},
	0x0005: {Name: "ImageAdjustment", Rule: tiff.Lookup{
		0: "Normal",
		1: "Bright+",
		2: "Bright-",
		3: "Contrast+",
		4: "Contrast-",
	}},
	0x0006: {Name: "CCDSpeed", Rule: tiff.Lookup{
		0: "ISO 80",
		2: "ISO 160",
		4: "ISO 320",
		5: "ISO 100",
	}},
	0x0007: {Name: "WhiteBalance", Rule: tiff.Lookup{
		0: "Auto",
		1: "Preset",
		2: "Daylight",
		3: "Incandescent",
		4: "Fluorescent",
		5: "Cloudy",
		6: "Speed Light",
	}},
}

// olympusTags covers Olympus notes, which start with an 8 byte "OLYMP" header.
var olympusTags = tiff.Dict{
	0x0100: {Name: "JPEGThumbnail"},
	0x0200: {Name: "SpecialMode", Rule: tiff.Callback(olympusSpecialMode)},
	0x0201: {Name: "JPEGQual", Rule: tiff.Lookup{
		1: "SQ",
		2: "HQ",
		3: "SHQ",
	}},
	0x0202: {Name: "Macro", Rule: tiff.Lookup{
		0: "Normal",
		1: "Macro",
		2: "SuperMacro",
	}},
	0x0203: {Name: "BWMode", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x0204: {Name: "DigitalZoom"},
	0x0205: {Name: "FocalPlaneDiagonal"},
	0x0206: {Name: "LensDistortionParams"},
	0x0207: {Name: "SoftwareRelease"},
	0x0208: {Name: "PictureInfo"},
	0x0209: {Name: "CameraID", Rule: tiff.Callback(tiff.FilteredASCII)},
	0x0300: {Name: "PreCaptureFrames"},
	0x0404: {Name: "SerialNumber"},
	0x0F00: {Name: "DataDump"},
	0x1000: {Name: "ShutterSpeedValue"},
	0x1001: {Name: "ISOValue"},
	0x1002: {Name: "ApertureValue"},
	0x1003: {Name: "BrightnessValue"},
	0x1004: {Name: "FlashMode", Rule: tiff.Lookup{
		2: "On",
		3: "Off",
	}},
	0x1005: {Name: "FlashDevice", Rule: tiff.Lookup{
		0: "None",
		1: "Internal",
		4: "External",
		5: "Internal + External",
	}},
	0x1006: {Name: "ExposureCompensation"},
	0x1007: {Name: "SensorTemperature"},
	0x1008: {Name: "LensTemperature"},
	0x100B: {Name: "FocusMode", Rule: tiff.Lookup{
		0: "Auto",
		1: "Manual",
	}},
	0x1017: {Name: "RedBalance"},
	0x1018: {Name: "BlueBalance"},
	0x101A: {Name: "SerialNumber"},
	0x1023: {Name: "FlashExposureComp"},
	0x1026: {Name: "ExternalFlashBounce", Rule: tiff.Lookup{
		0: "No",
		1: "Yes",
	}},
	0x1027: {Name: "ExternalFlashZoom"},
	0x1028: {Name: "ExternalFlashMode"},
	0x1029: {Name: "Contrast", Rule: tiff.Lookup{
		0: "High",
		1: "Normal",
		2: "Low",
	}},
	0x102A: {Name: "SharpnessFactor"},
	0x102B: {Name: "ColorControl"},
	0x102C: {Name: "ValidBits"},
	0x102D: {Name: "CoringFilter"},
	0x102E: {Name: "OlympusImageWidth"},
	0x102F: {Name: "OlympusImageHeight"},
	0x1034: {Name: "CompressionRatio"},
	0x1035: {Name: "PreviewImageValid", Rule: tiff.Lookup{
		0: "No",
		1: "Yes",
	}},
	0x1036: {Name: "PreviewImageStart"},
	0x1037: {Name: "PreviewImageLength"},
	0x1039: {Name: "CCDScanMode", Rule: tiff.Lookup{
		0: "Interlaced",
		1: "Progressive",
	}},
	0x103A: {Name: "NoiseReduction", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x103B: {Name: "InfinityLensStep"},
	0x103C: {Name: "NearLensStep"},
	0x2010: {Name: "Equipment"},
	0x2020: {Name: "CameraSettings"},
	0x2030: {Name: "RawDevelopment"},
	0x2040: {Name: "ImageProcessing"},
	0x2050: {Name: "FocusInfo"},
	0x3000: {Name: "RawInfo"},
}

// olympusCameraSettingsTags names the entries of the 0x2020 CameraSettings directory.
var olympusCameraSettingsTags = tiff.Dict{
	0x0100: {Name: "PreviewImageValid", Rule: tiff.Lookup{
		0: "No",
		1: "Yes",
	}},
	0x0101: {Name: "PreviewImageStart"},
	0x0102: {Name: "PreviewImageLength"},
	0x0200: {Name: "ExposureMode", Rule: tiff.Lookup{
		1: "Manual",
		2: "Program",
		3: "Aperture-priority AE",
		4: "Shutter speed priority AE",
		5: "Program-shift",
	}},
	0x0201: {Name: "AELock", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x0202: {Name: "MeteringMode", Rule: tiff.Lookup{
		2:    "Center Weighted",
		3:    "Spot",
		5:    "ESP",
		261:  "Pattern+AF",
		515:  "Spot+Highlight control",
		1027: "Spot+Shadow control",
	}},
	0x0300: {Name: "MacroMode", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x0301: {Name: "FocusMode", Rule: tiff.Lookup{
		0:  "Single AF",
		1:  "Sequential shooting AF",
		2:  "Continuous AF",
		3:  "Multi AF",
		10: "MF",
	}},
	0x0302: {Name: "FocusProcess", Rule: tiff.Lookup{
		0: "AF Not Used",
		1: "AF Used",
	}},
	0x0303: {Name: "AFSearch", Rule: tiff.Lookup{
		0: "Not Ready",
		1: "Ready",
	}},
	0x0304: {Name: "AFAreas"},
	0x0401: {Name: "FlashExposureCompensation"},
	0x0500: {Name: "WhiteBalance2", Rule: tiff.Lookup{
		0:   "Auto",
		16:  "7500K (Fine Weather with Shade)",
		17:  "6000K (Cloudy)",
		18:  "5300K (Fine Weather)",
		20:  "3000K (Tungsten light)",
		21:  "3600K (Tungsten light-like)",
		33:  "6600K (Daylight fluorescent)",
		34:  "4500K (Neutral white fluorescent)",
		35:  "4000K (Cool white fluorescent)",
		48:  "3600K (Tungsten light-like)",
		256: "Custom WB 1",
		257: "Custom WB 2",
		258: "Custom WB 3",
		259: "Custom WB 4",
		512: "Custom WB 5400K",
		513: "Custom WB 2900K",
		514: "Custom WB 8000K",
	}},
	0x0501: {Name: "WhiteBalanceTemperature"},
	0x0502: {Name: "WhiteBalanceBracket"},
	0x0503: {Name: "CustomSaturation"},
	0x0504: {Name: "ModifiedSaturation", Rule: tiff.Lookup{
		0: "Off",
		1: "CM1 (Red Enhance)",
		2: "CM2 (Green Enhance)",
		3: "CM3 (Blue Enhance)",
		4: "CM4 (Skin Tones)",
	}},
	0x0505: {Name: "ContrastSetting"},
	0x0506: {Name: "SharpnessSetting"},
	0x0507: {Name: "ColorSpace", Rule: tiff.Lookup{
		0: "sRGB",
		1: "Adobe RGB",
		2: "Pro Photo RGB",
	}},
	0x0509: {Name: "SceneMode", Rule: tiff.Lookup{
		0:  "Standard",
		6:  "Auto",
		7:  "Sport",
		8:  "Portrait",
		9:  "Landscape+Portrait",
		10: "Landscape",
		11: "Night scene",
		13: "Panorama",
		16: "Landscape+Portrait",
		17: "Night+Portrait",
		19: "Fireworks",
		20: "Sunset",
		22: "Macro",
		25: "Documents",
		26: "Museum",
		28: "Beach&Snow",
		30: "Candle",
		35: "Underwater Wide1",
		36: "Underwater Macro",
		39: "High Key",
		40: "Digital Image Stabilization",
		44: "Underwater Wide2",
		45: "Low Key",
		46: "Children",
		48: "Nature Macro",
	}},
	0x050A: {Name: "NoiseReduction", Rule: tiff.Lookup{
		0: "Off",
		1: "Noise Reduction",
		2: "Noise Filter",
		3: "Noise Reduction + Noise Filter",
		4: "Noise Filter (ISO Boost)",
		5: "Noise Reduction + Noise Filter (ISO Boost)",
	}},
	0x050B: {Name: "DistortionCorrection", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x050C: {Name: "ShadingCompensation", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x050D: {Name: "CompressionFactor"},
	0x050F: {Name: "Gradation", Rule: tiff.TextLookup{
		"-1 -1 1": "Low Key",
		"0 -1 1":  "Normal",
		"1 -1 1":  "High Key",
	}},
	0x0520: {Name: "PictureMode", Rule: tiff.Lookup{
		1:   "Vivid",
		2:   "Natural",
		3:   "Muted",
		256: "Monotone",
		512: "Sepia",
	}},
	0x0521: {Name: "PictureModeSaturation"},
	0x0522: {Name: "PictureModeHue?"},
	0x0523: {Name: "PictureModeContrast"},
	0x0524: {Name: "PictureModeSharpness"},
	0x0525: {Name: "PictureModeBWFilter", Rule: tiff.Lookup{
		0: "n/a",
		1: "Neutral",
		2: "Yellow",
		3: "Orange",
		4: "Red",
		5: "Green",
	}},
	0x0526: {Name: "PictureModeTone", Rule: tiff.Lookup{
		0: "n/a",
		1: "Neutral",
		2: "Sepia",
		3: "Blue",
		4: "Purple",
		5: "Green",
	}},
	0x0600: {Name: "Sequence"},
	0x0601: {Name: "PanoramaMode"},
	0x0603: {Name: "ImageQuality2", Rule: tiff.Lookup{
		1: "SQ",
		2: "HQ",
		3: "SHQ",
		4: "RAW",
	}},
	0x0901: {Name: "ManometerReading"},
}

var casioTags = tiff.Dict{
	0x0001: {Name: "RecordingMode", Rule: tiff.Lookup{
		1: "Single Shutter",
		2: "Panorama",
		3: "Night Scene",
		4: "Portrait",
		5: "Landscape",
	}},
	0x0002: {Name: "Quality", Rule: tiff.Lookup{
		1: "Economy",
		2: "Normal",
		3: "Fine",
	}},
	0x0003: {Name: "FocusingMode", Rule: tiff.Lookup{
		2: "Macro",
		3: "Auto Focus",
		4: "Manual Focus",
		5: "Infinity",
	}},
	0x0004: {Name: "FlashMode", Rule: tiff.Lookup{
		1: "Auto",
		2: "On",
		3: "Off",
		4: "Red Eye Reduction",
	}},
	0x0005: {Name: "FlashIntensity", Rule: tiff.Lookup{
		11: "Weak",
		13: "Normal",
		15: "Strong",
	}},
	0x0006: {Name: "Object Distance"},
	0x0007: {Name: "WhiteBalance", Rule: tiff.Lookup{
		1:   "Auto",
		2:   "Tungsten",
		3:   "Daylight",
		4:   "Fluorescent",
		5:   "Shade",
		129: "Manual",
	}},
	0x000B: {Name: "Sharpness", Rule: tiff.Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0x000C: {Name: "Contrast", Rule: tiff.Lookup{
		0: "Normal",
		1: "Low",
		2: "High",
	}},
	0x000D: {Name: "Saturation", Rule: tiff.Lookup{
		0: "Normal",
		1: "Low",
		2: "High",
	}},
	0x0014: {Name: "CCDSpeed", Rule: tiff.Lookup{
		64:  "Normal",
		80:  "Normal",
		100: "High",
		125: "+1.0",
		244: "+3.0",
		250: "+2.0",
	}},
}

var fujifilmTags = tiff.Dict{
	0x0000: {Name: "NoteVersion", Rule: tiff.Callback(tiff.FilteredASCII)},
	0x1000: {Name: "Quality"},
	0x1001: {Name: "Sharpness", Rule: tiff.Lookup{
		1: "Soft",
		2: "Soft",
		3: "Normal",
		4: "Hard",
		5: "Hard",
	}},
	0x1002: {Name: "WhiteBalance", Rule: tiff.Lookup{
		0:    "Auto",
		256:  "Daylight",
		512:  "Cloudy",
		768:  "DaylightColor-Fluorescent",
		769:  "DaywhiteColor-Fluorescent",
		770:  "White-Fluorescent",
		1024: "Incandescent",
		3840: "Custom",
	}},
	0x1003: {Name: "Color", Rule: tiff.Lookup{
		0:   "Normal",
		256: "High",
		512: "Low",
	}},
	0x1004: {Name: "Tone", Rule: tiff.Lookup{
		0:   "Normal",
		256: "High",
		512: "Low",
	}},
	0x1010: {Name: "FlashMode", Rule: tiff.Lookup{
		0: "Auto",
		1: "On",
		2: "Off",
		3: "Red Eye Reduction",
	}},
	0x1011: {Name: "FlashStrength"},
	0x1020: {Name: "Macro", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x1021: {Name: "FocusMode", Rule: tiff.Lookup{
		0: "Auto",
		1: "Manual",
	}},
	0x1030: {Name: "SlowSync", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x1031: {Name: "PictureMode", Rule: tiff.Lookup{
		0:   "Auto",
		1:   "Portrait",
		2:   "Landscape",
		4:   "Sports",
		5:   "Night",
		6:   "Program AE",
		256: "Aperture Priority AE",
		512: "Shutter Priority AE",
		768: "Manual Exposure",
	}},
	0x1100: {Name: "MotorOrBracket", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x1300: {Name: "BlurWarning", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x1301: {Name: "FocusWarning", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
	0x1302: {Name: "AEWarning", Rule: tiff.Lookup{
		0: "Off",
		1: "On",
	}},
}

var canonTags = tiff.Dict{
	0x0006: {Name: "ImageType"},
	0x0007: {Name: "FirmwareVersion"},
	0x0008: {Name: "ImageNumber"},
	0x0009: {Name: "OwnerName"},
}

// canonCameraSettingsTags maps element indices of tag 0x0001 to their meaning.
var canonCameraSettingsTags = tiff.Dict{
	1: {Name: "Macromode", Rule: tiff.Lookup{
		1: "Macro",
		2: "Normal",
	}},
	2: {Name: "SelfTimer"},
	3: {Name: "Quality", Rule: tiff.Lookup{
		2: "Normal",
		3: "Fine",
		5: "Superfine",
	}},
	4: {Name: "FlashMode", Rule: tiff.Lookup{
		0:  "Flash Not Fired",
		1:  "Auto",
		2:  "On",
		3:  "Red-Eye Reduction",
		4:  "Slow Synchro",
		5:  "Auto + Red-Eye Reduction",
		6:  "On + Red-Eye Reduction",
		16: "external flash",
	}},
	5: {Name: "ContinuousDriveMode", Rule: tiff.Lookup{
		0: "Single Or Timer",
		1: "Continuous",
	}},
	7: {Name: "FocusMode", Rule: tiff.Lookup{
		0: "One-Shot",
		1: "AI Servo",
		2: "AI Focus",
		3: "MF",
		4: "Single",
		5: "Continuous",
		6: "MF",
	}},
	10: {Name: "ImageSize", Rule: tiff.Lookup{
		0: "Large",
		1: "Medium",
		2: "Small",
	}},
	11: {Name: "EasyShootingMode", Rule: tiff.Lookup{
		0:  "Full Auto",
		1:  "Manual",
		2:  "Landscape",
		3:  "Fast Shutter",
		4:  "Slow Shutter",
		5:  "Night",
		6:  "B&W",
		7:  "Sepia",
		8:  "Portrait",
		9:  "Sports",
		10: "Macro/Close-Up",
		11: "Pan Focus",
	}},
	12: {Name: "DigitalZoom", Rule: tiff.Lookup{
		0: "None",
		1: "2x",
		2: "4x",
	}},
	13: {Name: "Contrast", Rule: tiff.Lookup{
		0:     "Normal",
		1:     "High",
		65535: "Low",
	}},
	14: {Name: "Saturation", Rule: tiff.Lookup{
		0:     "Normal",
		1:     "High",
		65535: "Low",
	}},
	15: {Name: "Sharpness", Rule: tiff.Lookup{
		0:     "Normal",
		1:     "High",
		65535: "Low",
	}},
	16: {Name: "ISO", Rule: tiff.Lookup{
		0:  "See ISOSpeedRatings Tag",
		15: "Auto",
		16: "50",
		17: "100",
		18: "200",
		19: "400",
	}},
	17: {Name: "MeteringMode", Rule: tiff.Lookup{
		3: "Evaluative",
		4: "Partial",
		5: "Center-weighted",
	}},
	18: {Name: "FocusType", Rule: tiff.Lookup{
		0: "Manual",
		1: "Auto",
		3: "Close-Up (Macro)",
		8: "Locked (Pan Mode)",
	}},
	19: {Name: "AFPointSelected", Rule: tiff.Lookup{
		12288: "None (MF)",
		12289: "Auto-Selected",
		12290: "Right",
		12291: "Center",
		12292: "Left",
	}},
	20: {Name: "ExposureMode", Rule: tiff.Lookup{
		0: "Easy Shooting",
		1: "Program",
		2: "Tv-priority",
		3: "Av-priority",
		4: "Manual",
		5: "A-DEP",
	}},
	23: {Name: "LongFocalLengthOfLensInFocalUnits"},
	24: {Name: "ShortFocalLengthOfLensInFocalUnits"},
	25: {Name: "FocalUnitsPerMM"},
	28: {Name: "FlashActivity", Rule: tiff.Lookup{
		0: "Did Not Fire",
		1: "Fired",
	}},
	29: {Name: "FlashDetails", Rule: tiff.Lookup{
		4:  "FP Sync Enabled",
		7:  "2nd(\"Rear\")-Curtain Sync Used",
		11: "FP Sync Used",
		13: "Internal Flash",
		14: "External E-TTL",
	}},
	32: {Name: "FocusMode", Rule: tiff.Lookup{
		0: "Single",
		1: "Continuous",
	}},
}

// canonShotInfoTags maps element indices of tag 0x0004 to their meaning.
var canonShotInfoTags = tiff.Dict{
	7: {Name: "WhiteBalance", Rule: tiff.Lookup{
		0: "Auto",
		1: "Sunny",
		2: "Cloudy",
		3: "Tungsten",
		4: "Fluorescent",
		5: "Flash",
		6: "Custom",
	}},
	9:  {Name: "SequenceNumber"},
	14: {Name: "AFPointUsed"},
	15: {Name: "FlashBias", Rule: tiff.Lookup{
		0:     "0 EV",
		12:    "0.33 EV",
		16:    "0.50 EV",
		20:    "0.67 EV",
		32:    "1 EV",
		44:    "1.33 EV",
		48:    "1.50 EV",
		52:    "1.67 EV",
		64:    "2 EV",
		65472: "-2 EV",
		65484: "-1.67 EV",
		65488: "-1.50 EV",
		65492: "-1.33 EV",
		65504: "-1 EV",
		65516: "-0.67 EV",
		65520: "-0.50 EV",
		65524: "-0.33 EV",
	}},
	19: {Name: "SubjectDistance"},
}
