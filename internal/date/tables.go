package date

// yearOffsets holds the serial of 1 January for each year from 1900 to 2200.
// The trailing 2200 entry bounds year decoding for dates in December 2199.
var yearOffsets = [MaxYear - MinYear + 2]int{
	0, 365, 730, 1095, 1460, 1826, 2191, 2556, 2921, 3287,                          // 1900-1909
	3652, 4017, 4382, 4748, 5113, 5478, 5843, 6209, 6574, 6939,                     // 1910-1919
	7304, 7670, 8035, 8400, 8765, 9131, 9496, 9861, 10226, 10592,                   // 1920-1929
	10957, 11322, 11687, 12053, 12418, 12783, 13148, 13514, 13879, 14244,           // 1930-1939
	14609, 14975, 15340, 15705, 16070, 16436, 16801, 17166, 17531, 17897,           // 1940-1949
	18262, 18627, 18992, 19358, 19723, 20088, 20453, 20819, 21184, 21549,           // 1950-1959
	21914, 22280, 22645, 23010, 23375, 23741, 24106, 24471, 24836, 25202,           // 1960-1969
	25567, 25932, 26297, 26663, 27028, 27393, 27758, 28124, 28489, 28854,           // 1970-1979
	29219, 29585, 29950, 30315, 30680, 31046, 31411, 31776, 32141, 32507,           // 1980-1989
	32872, 33237, 33602, 33968, 34333, 34698, 35063, 35429, 35794, 36159,           // 1990-1999
	36524, 36890, 37255, 37620, 37985, 38351, 38716, 39081, 39446, 39812,           // 2000-2009
	40177, 40542, 40907, 41273, 41638, 42003, 42368, 42734, 43099, 43464,           // 2010-2019
	43829, 44195, 44560, 44925, 45290, 45656, 46021, 46386, 46751, 47117,           // 2020-2029
	47482, 47847, 48212, 48578, 48943, 49308, 49673, 50039, 50404, 50769,           // 2030-2039
	51134, 51500, 51865, 52230, 52595, 52961, 53326, 53691, 54056, 54422,           // 2040-2049
	54787, 55152, 55517, 55883, 56248, 56613, 56978, 57344, 57709, 58074,           // 2050-2059
	58439, 58805, 59170, 59535, 59900, 60266, 60631, 60996, 61361, 61727,           // 2060-2069
	62092, 62457, 62822, 63188, 63553, 63918, 64283, 64649, 65014, 65379,           // 2070-2079
	65744, 66110, 66475, 66840, 67205, 67571, 67936, 68301, 68666, 69032,           // 2080-2089
	69397, 69762, 70127, 70493, 70858, 71223, 71588, 71954, 72319, 72684,           // 2090-2099
	73049, 73414, 73779, 74144, 74509, 74875, 75240, 75605, 75970, 76336,           // 2100-2109
	76701, 77066, 77431, 77797, 78162, 78527, 78892, 79258, 79623, 79988,           // 2110-2119
	80353, 80719, 81084, 81449, 81814, 82180, 82545, 82910, 83275, 83641,           // 2120-2129
	84006, 84371, 84736, 85102, 85467, 85832, 86197, 86563, 86928, 87293,           // 2130-2139
	87658, 88024, 88389, 88754, 89119, 89485, 89850, 90215, 90580, 90946,           // 2140-2149
	91311, 91676, 92041, 92407, 92772, 93137, 93502, 93868, 94233, 94598,           // 2150-2159
	94963, 95329, 95694, 96059, 96424, 96790, 97155, 97520, 97885, 98251,           // 2160-2169
	98616, 98981, 99346, 99712, 100077, 100442, 100807, 101173, 101538, 101903,     // 2170-2179
	102268, 102634, 102999, 103364, 103729, 104095, 104460, 104825, 105190, 105556, // 2180-2189
	105921, 106286, 106651, 107017, 107382, 107747, 108112, 108478, 108843, 109208, // 2190-2199
	109573,                                                                         // 2200
}

var monthOffsets = [12]int{
	0, 31, 59, 90, 120, 151,      // Jan - Jun
	181, 212, 243, 273, 304, 334, // Jul - Dec
}

var leapMonthOffsets = [12]int{
	0, 31, 60, 91, 121, 152,      // Jan - Jun
	182, 213, 244, 274, 305, 335, // Jul - Dec
}

// Day of year of Easter Monday, indexed by year - 1900.
var westernEasterMondays = [MaxYear - MinYear + 1]int{
	106, 98, 90, 103, 95, 114, 106, 91, 111, 102,  // 1900-1909
	87, 107, 99, 83, 103, 95, 115, 99, 91, 111,    // 1910-1919
	96, 87, 107, 92, 112, 103, 95, 108, 100, 91,   // 1920-1929
	111, 96, 88, 107, 92, 112, 104, 88, 108, 100,  // 1930-1939
	85, 104, 96, 116, 101, 92, 112, 97, 89, 108,   // 1940-1949
	100, 85, 105, 96, 109, 101, 93, 112, 97, 89,   // 1950-1959
	109, 93, 113, 105, 90, 109, 101, 86, 106, 97,  // 1960-1969
	89, 102, 94, 113, 105, 90, 110, 101, 86, 106,  // 1970-1979
	98, 110, 102, 94, 114, 98, 90, 110, 95, 86,    // 1980-1989
	106, 91, 111, 102, 94, 107, 99, 90, 103, 95,   // 1990-1999
	115, 106, 91, 111, 103, 87, 107, 99, 84, 103,  // 2000-2009
	95, 115, 100, 91, 111, 96, 88, 107, 92, 112,   // 2010-2019
	104, 95, 108, 100, 92, 111, 96, 88, 108, 92,   // 2020-2029
	112, 104, 89, 108, 100, 85, 105, 96, 116, 101, // 2030-2039
	93, 112, 97, 89, 109, 100, 85, 105, 97, 109,   // 2040-2049
	101, 93, 113, 97, 89, 109, 94, 113, 105, 90,   // 2050-2059
	110, 101, 86, 106, 98, 89, 102, 94, 114, 105,  // 2060-2069
	90, 110, 102, 86, 106, 98, 111, 102, 94, 114,  // 2070-2079
	99, 90, 110, 95, 87, 106, 91, 111, 103, 94,    // 2080-2089
	107, 99, 91, 103, 95, 115, 107, 91, 111, 103,  // 2090-2099
	88, 108, 100, 85, 105, 96, 109, 101, 93, 112,  // 2100-2109
	97, 89, 109, 93, 113, 105, 90, 109, 101, 86,   // 2110-2119
	106, 97, 89, 102, 94, 113, 105, 90, 110, 101,  // 2120-2129
	86, 106, 98, 110, 102, 94, 114, 98, 90, 110,   // 2130-2139
	95, 86, 106, 91, 111, 102, 94, 107, 99, 90,    // 2140-2149
	103, 95, 115, 106, 91, 111, 103, 87, 107, 99,  // 2150-2159
	84, 103, 95, 115, 100, 91, 111, 96, 88, 107,   // 2160-2169
	92, 112, 104, 95, 108, 100, 92, 111, 96, 88,   // 2170-2179
	108, 92, 112, 104, 89, 108, 100, 85, 105, 96,  // 2180-2189
	116, 101, 93, 112, 97, 89, 109, 100, 85, 105,  // 2190-2199
}

var orthodoxEasterMondays = [MaxYear - MinYear + 1]int{
	113, 105, 118, 110, 102, 121, 106, 126, 118, 102, // 1900-1909
	122, 114, 99, 118, 110, 95, 115, 106, 126, 111,   // 1910-1919
	103, 122, 107, 99, 119, 110, 123, 115, 107, 126,  // 1920-1929
	111, 103, 123, 107, 99, 119, 104, 123, 115, 100,  // 1930-1939
	120, 111, 96, 116, 108, 127, 112, 104, 124, 115,  // 1940-1949
	100, 120, 112, 96, 116, 108, 128, 112, 104, 124,  // 1950-1959
	109, 100, 120, 105, 125, 116, 101, 121, 113, 104, // 1960-1969
	117, 109, 101, 120, 105, 125, 117, 101, 121, 113, // 1970-1979
	98, 117, 109, 129, 114, 105, 125, 110, 102, 121,  // 1980-1989
	106, 98, 118, 109, 122, 114, 106, 118, 110, 102,  // 1990-1999
	122, 106, 126, 118, 103, 122, 114, 99, 119, 110,  // 2000-2009
	95, 115, 107, 126, 111, 103, 123, 107, 99, 119,   // 2010-2019
	111, 123, 115, 107, 127, 111, 103, 123, 108, 99,  // 2020-2029
	119, 104, 124, 115, 100, 120, 112, 96, 116, 108,  // 2030-2039
	128, 112, 104, 124, 116, 100, 120, 112, 97, 116,  // 2040-2049
	108, 128, 113, 104, 124, 109, 101, 120, 105, 125, // 2050-2059
	117, 101, 121, 113, 105, 117, 109, 101, 121, 105, // 2060-2069
	125, 110, 102, 121, 113, 98, 118, 109, 129, 114,  // 2070-2079
	106, 125, 110, 102, 122, 106, 98, 118, 110, 122,  // 2080-2089
	114, 99, 119, 110, 102, 115, 107, 126, 118, 103,  // 2090-2099
	123, 115, 100, 120, 112, 96, 116, 108, 128, 112,  // 2100-2109
	104, 124, 109, 100, 120, 105, 125, 116, 108, 121, // 2110-2119
	113, 104, 124, 109, 101, 120, 105, 125, 117, 101, // 2120-2129
	121, 113, 98, 117, 109, 129, 114, 105, 125, 110,  // 2130-2139
	102, 121, 113, 98, 118, 109, 129, 114, 106, 125,  // 2140-2149
	110, 102, 122, 106, 126, 118, 103, 122, 114, 99,  // 2150-2159
	119, 110, 102, 115, 107, 126, 111, 103, 123, 114, // 2160-2169
	99, 119, 111, 130, 115, 107, 127, 111, 103, 123,  // 2170-2179
	108, 99, 119, 104, 124, 115, 100, 120, 112, 103,  // 2180-2189
	116, 108, 128, 119, 104, 124, 116, 100, 120, 112, // 2190-2199
}
