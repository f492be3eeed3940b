package exif

import "github.com/cul/imgprops/tiff"

// mainTags names the tags of IFD0, the thumbnail IFD and the EXIF sub-IFD.
var mainTags = tiff.Dict{
	0x0100: {Name: "ImageWidth"},
	0x0101: {Name: "ImageLength"},
	0x0102: {Name: "BitsPerSample"},
	0x0103: {Name: "Compression", Rule: tiff.Lookup{
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
	0x0106: {Name: "PhotometricInterpretation"},
	0x0107: {Name: "Thresholding"},
	0x010A: {Name: "FillOrder"},
	0x010D: {Name: "DocumentName"},
	0x010E: {Name: "ImageDescription"},
	0x010F: {Name: "Make"},
	0x0110: {Name: "Model"},
	0x0111: {Name: "StripOffsets"},
	0x0112: {Name: "Orientation", Rule: tiff.Lookup{
		1: "Horizontal (normal)",
		2: "Mirrored horizontal",
		3: "Rotated 180",
		4: "Mirrored vertical",
		5: "Mirrored horizontal then rotated 90 CCW",
		6: "Rotated 90 CW",
		7: "Mirrored horizontal then rotated 90 CW",
		8: "Rotated 90 CCW",
	}},
	0x0115: {Name: "SamplesPerPixel"},
	0x0116: {Name: "RowsPerStrip"},
	0x0117: {Name: "StripByteCounts"},
	0x011A: {Name: "XResolution"},
	0x011B: {Name: "YResolution"},
	0x011C: {Name: "PlanarConfiguration"},
	0x011D: {Name: "PageName", Rule: tiff.Callback(tiff.FilteredASCII)},
	0x0128: {Name: "ResolutionUnit", Rule: tiff.Lookup{
		1: "Not Absolute",
		2: "Pixels/Inch",
		3: "Pixels/Centimeter",
	}},
	0x012D: {Name: "TransferFunction"},
	0x0131: {Name: "Software"},
	0x0132: {Name: "DateTime"},
	0x013B: {Name: "Artist"},
	0x013E: {Name: "WhitePoint"},
	0x013F: {Name: "PrimaryChromaticities"},
	0x0156: {Name: "TransferRange"},
	0x0200: {Name: "JPEGProc"},
	0x0201: {Name: "JPEGInterchangeFormat"},
	0x0202: {Name: "JPEGInterchangeFormatLength"},
	0x0211: {Name: "YCbCrCoefficients"},
	0x0212: {Name: "YCbCrSubSampling"},
	0x0213: {Name: "YCbCrPositioning", Rule: tiff.Lookup{
		1: "Centered",
		2: "Co-sited",
	}},
	0x0214: {Name: "ReferenceBlackWhite"},
	0x4746: {Name: "Rating"},
	0x828D: {Name: "CFARepeatPatternDim"},
	0x828E: {Name: "CFAPattern"},
	0x828F: {Name: "BatteryLevel"},
	0x8298: {Name: "Copyright"},
	0x829A: {Name: "ExposureTime"},
	0x829D: {Name: "FNumber"},
	0x83BB: {Name: "IPTC/NAA"},
	0x8769: {Name: "ExifOffset"},
	0x8773: {Name: "InterColorProfile"},
	0x8822: {Name: "ExposureProgram", Rule: tiff.Lookup{
		0: "Unidentified",
		1: "Manual",
		2: "Program Normal",
		3: "Aperture Priority",
		4: "Shutter Priority",
		5: "Program Creative",
		6: "Program Action",
		7: "Portrait Mode",
		8: "Landscape Mode",
	}},
	0x8824: {Name: "SpectralSensitivity"},
	0x8825: {Name: "GPSInfo"},
	0x8827: {Name: "ISOSpeedRatings"},
	0x8828: {Name: "OECF"},
	0x9000: {Name: "ExifVersion", Rule: tiff.Callback(tiff.FilteredASCII)},
	0x9003: {Name: "DateTimeOriginal"},
	0x9004: {Name: "DateTimeDigitized"},
	0x9101: {Name: "ComponentsConfiguration", Rule: tiff.Lookup{
		0: "",
		1: "Y",
		2: "Cb",
		3: "Cr",
		4: "Red",
		5: "Green",
		6: "Blue",
	}},
	0x9102: {Name: "CompressedBitsPerPixel"},
	0x9201: {Name: "ShutterSpeedValue"},
	0x9202: {Name: "ApertureValue"},
	0x9203: {Name: "BrightnessValue"},
	0x9204: {Name: "ExposureBiasValue"},
	0x9205: {Name: "MaxApertureValue"},
	0x9206: {Name: "SubjectDistance"},
	0x9207: {Name: "MeteringMode", Rule: tiff.Lookup{
		0: "Unidentified",
		1: "Average",
		2: "CenterWeightedAverage",
		3: "Spot",
		4: "MultiSpot",
		5: "Pattern",
	}},
	0x9208: {Name: "LightSource", Rule: tiff.Lookup{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten",
		9:   "Fine Weather",
		10:  "Flash",
		11:  "Shade",
		12:  "Daylight Fluorescent",
		13:  "Day White Fluorescent",
		14:  "Cool White Fluorescent",
		15:  "White Fluorescent",
		17:  "Standard Light A",
		18:  "Standard Light B",
		19:  "Standard Light C",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		255: "Other",
	}},
	0x9209: {Name: "Flash", Rule: tiff.Lookup{
		0:  "No",
		1:  "Fired",
		5:  "Fired (?)",
		7:  "Fired (!)",
		9:  "Fill Fired",
		13: "Fill Fired (?)",
		15: "Fill Fired (!)",
		16: "Off",
		24: "Auto Off",
		25: "Auto Fired",
		29: "Auto Fired (?)",
		31: "Auto Fired (!)",
		32: "Not Available",
	}},
	0x920A: {Name: "FocalLength"},
	0x9214: {Name: "SubjectArea"},
	0x927C: {Name: "MakerNote"},
	0x9286: {Name: "UserComment", Rule: tiff.Callback(tiff.EncodedString)},
	0x9290: {Name: "SubSecTime"},
	0x9291: {Name: "SubSecTimeOriginal"},
	0x9292: {Name: "SubSecTimeDigitized"},
	0x9C9B: {Name: "XPTitle"},
	0x9C9C: {Name: "XPComment"},
	0x9C9D: {Name: "XPAuthor"},
	0x9C9E: {Name: "XPKeywords"},
	0x9C9F: {Name: "XPSubject"},
	0xA000: {Name: "FlashPixVersion", Rule: tiff.Callback(tiff.FilteredASCII)},
	0xA001: {Name: "ColorSpace", Rule: tiff.Lookup{
		1:     "sRGB",
		2:     "Adobe RGB",
		65535: "Uncalibrated",
	}},
	0xA002: {Name: "ExifImageWidth"},
	0xA003: {Name: "ExifImageLength"},
	0xA005: {Name: "InteroperabilityOffset"},
	0xA20B: {Name: "FlashEnergy"},
	0xA20C: {Name: "SpatialFrequencyResponse"},
	0xA20E: {Name: "FocalPlaneXResolution"},
	0xA20F: {Name: "FocalPlaneYResolution"},
	0xA210: {Name: "FocalPlaneResolutionUnit"},
	0xA214: {Name: "SubjectLocation"},
	0xA215: {Name: "ExposureIndex"},
	0xA217: {Name: "SensingMethod", Rule: tiff.Lookup{
		1: "Not defined",
		2: "One-chip color area",
		3: "Two-chip color area",
		4: "Three-chip color area",
		5: "Color sequential area",
		7: "Trilinear",
		8: "Color sequential linear",
	}},
	0xA300: {Name: "FileSource", Rule: tiff.Lookup{
		1: "Film Scanner",
		2: "Reflection Print Scanner",
		3: "Digital Camera",
	}},
	0xA301: {Name: "SceneType", Rule: tiff.Lookup{
		1: "Directly Photographed",
	}},
	0xA302: {Name: "CVAPattern"},
	0xA401: {Name: "CustomRendered", Rule: tiff.Lookup{
		0: "Normal",
		1: "Custom",
	}},
	0xA402: {Name: "ExposureMode", Rule: tiff.Lookup{
		0: "Auto Exposure",
		1: "Manual Exposure",
		2: "Auto Bracket",
	}},
	0xA403: {Name: "WhiteBalance", Rule: tiff.Lookup{
		0: "Auto",
		1: "Manual",
	}},
	0xA404: {Name: "DigitalZoomRatio"},
	0xA405: {Name: "FocalLengthIn35mmFilm"},
	0xA406: {Name: "SceneCaptureType", Rule: tiff.Lookup{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night",
	}},
	0xA407: {Name: "GainControl", Rule: tiff.Lookup{
		0: "None",
		1: "Low gain up",
		2: "High gain up",
		3: "Low gain down",
		4: "High gain down",
	}},
	0xA408: {Name: "Contrast", Rule: tiff.Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0xA409: {Name: "Saturation", Rule: tiff.Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0xA40A: {Name: "Sharpness", Rule: tiff.Lookup{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	}},
	0xA40B: {Name: "DeviceSettingDescription"},
	0xA40C: {Name: "SubjectDistanceRange"},
	0xA500: {Name: "Gamma"},
	0xC4A5: {Name: "PrintIM"},
	0xEA1C: {Name: "Padding"},
}

var interopTags = tiff.Dict{
	0x0001: {Name: "InteroperabilityIndex"},
	0x0002: {Name: "InteroperabilityVersion"},
	0x1000: {Name: "RelatedImageFileFormat"},
	0x1001: {Name: "RelatedImageWidth"},
	0x1002: {Name: "RelatedImageLength"},
}

var gpsTags = tiff.Dict{
	0x0000: {Name: "GPSVersionID"},
	0x0001: {Name: "GPSLatitudeRef"},
	0x0002: {Name: "GPSLatitude"},
	0x0003: {Name: "GPSLongitudeRef"},
	0x0004: {Name: "GPSLongitude"},
	0x0005: {Name: "GPSAltitudeRef", Rule: tiff.Lookup{
		0: "Above Sea Level",
		1: "Below Sea Level",
	}},
	0x0006: {Name: "GPSAltitude"},
	0x0007: {Name: "GPSTimeStamp"},
	0x0008: {Name: "GPSSatellites"},
	0x0009: {Name: "GPSStatus"},
	0x000A: {Name: "GPSMeasureMode"},
	0x000B: {Name: "GPSDOP"},
	0x000C: {Name: "GPSSpeedRef"},
	0x000D: {Name: "GPSSpeed"},
	0x000E: {Name: "GPSTrackRef"},
	0x000F: {Name: "GPSTrack"},
	0x0010: {Name: "GPSImgDirectionRef"},
	0x0011: {Name: "GPSImgDirection"},
	0x0012: {Name: "GPSMapDatum"},
	0x0013: {Name: "GPSDestLatitudeRef"},
	0x0014: {Name: "GPSDestLatitude"},
	0x0015: {Name: "GPSDestLongitudeRef"},
	0x0016: {Name: "GPSDestLongitude"},
	0x0017: {Name: "GPSDestBearingRef"},
	0x0018: {Name: "GPSDestBearing"},
	0x0019: {Name: "GPSDestDistanceRef"},
	0x001A: {Name: "GPSDestDistance"},
	0x001B: {Name: "GPSProcessingMethod", Rule: tiff.Callback(tiff.EncodedString)},
	0x001C: {Name: "GPSAreaInformation", Rule: tiff.Callback(tiff.EncodedString)},
	0x001D: {Name: "GPSDate"},
	0x001E: {Name: "GPSDifferential", Rule: tiff.Lookup{
		0: "No Correction",
		1: "Differential Corrected",
	}},
}
