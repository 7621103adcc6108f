package spec

// builtinDefinitions seeds every Registry on Reset.
var builtinDefinitions = []struct {
	Type       string
	Definition string
}{
	{
		Type:       "branch",
		Definition: "Branch;code:301;rq;ro;fmt:L;len:32;;" +
			"Update;code:302;type:date;ro;fmt:L;len:20;;" +
			"Access;code:303;type:date;ro;fmt:L;len:20;;" +
			"Owner;code:304;fmt:R;len:32;;" +
			"Description;code:306;type:text;len:128;;" +
			"Options;code:309;type:line;len:32;val:" +
			"unlocked/locked;;" +
			"View;code:311;type:wlist;words:2;len:64;;",
	},
	{
		Type:       "change",
		Definition: "Change;code:201;rq;ro;fmt:L;seq:1;len:10;;" +
			"Date;code:202;type:date;ro;fmt:R;seq:3;len:20;;" +
			"Client;code:203;ro;fmt:L;seq:2;len:32;;" +
			"User;code:204;ro;fmt:L;seq:4;len:32;;" +
			"Status;code:205;ro;fmt:R;seq:5;len:10;;" +
			"Type;code:211;seq:6;type:select;fmt:L;len:10;" +
			"val:public/restricted;;" +
			"ImportedBy;code:212;type:line;ro;fmt:L;len:32;;" +
			"Identity;code:213;type:line;;" +
			"Description;code:206;type:text;rq;seq:7;;" +
			"JobStatus;code:207;fmt:I;type:select;seq:9;;" +
			"Jobs;code:208;type:wlist;seq:8;len:32;;" +
			"Stream;code:214;type:line;len:64;;" +
			"Files;code:210;type:llist;len:64;;",
	},
	{
		Type:       "client",
		Definition: "Client;code:301;rq;ro;seq:1;len:32;;" +
			"Update;code:302;type:date;ro;seq:2;fmt:L;len:20;;" +
			"Access;code:303;type:date;ro;seq:4;fmt:L;len:20;;" +
			"Owner;code:304;seq:3;fmt:R;len:32;;" +
			"Host;code:305;seq:5;fmt:R;len:32;;" +
			"Description;code:306;type:text;len:128;;" +
			"Root;code:307;rq;type:line;len:64;;" +
			"AltRoots;code:308;type:llist;len:64;;" +
			"Options;code:309;type:line;len:64;val:" +
			"noallwrite/allwrite,noclobber/clobber,nocompress/compress," +
			"unlocked/locked,nomodtime/modtime,normdir/rmdir;;" +
			"SubmitOptions;code:313;type:select;fmt:L;len:25;val:" +
			"submitunchanged/submitunchanged+reopen/revertunchanged/" +
			"revertunchanged+reopen/leaveunchanged/leaveunchanged+reopen;;" +
			"LineEnd;code:310;type:select;fmt:L;len:12;val:" +
			"local/unix/mac/win/share;;" +
			"Stream;code:314;type:line;len:64;;" +
			"StreamAtChange;code:316;type:line;len:64;;" +
			"ServerID;code:315;type:line;ro;len:64;;" +
			"Type;code:318;type:select;len:10;val:" +
			"writeable/readonly/graph/partitioned;;" +
			"Backup;code:319;type:select;len:10;val:enable/disable;;" +
			"View;code:311;type:wlist;words:2;len:64;;" +
			"ChangeView;code:317;type:llist;len:64;;",
	},
	{
		Type:       "depot",
		Definition: "Depot;code:251;rq;ro;len:32;;" +
			"Owner;code:252;len:32;;" +
			"Date;code:253;type:date;ro;len:20;;" +
			"Description;code:254;type:text;len:128;;" +
			"Type;code:255;rq;len:10;;" +
			"Address;code:256;len:64;;" +
			"Suffix;code:258;len:64;;" +
			"StreamDepth;code:260;len:64;;" +
			"Map;code:257;rq;len:64;;" +
			"SpecMap;code:259;type:wlist;len:64;;",
	},
	{
		Type:       "extension",
		Definition: "ExtName;code:901;type:line;opt:once;len:64;;" +
			"ExtDescription;code:902;type:text;opt:once;len:128;;" +
			"ExtVersion;code:903;type:line;opt:once;len:32;;" +
			"ExtUUID;code:904;type:line;opt:once;len:36;;" +
			"ExtRev;code:905;type:word;opt:once;len:20;;" +
			"ExtMaxScriptTime;code:913;type:word;len:12;;" +
			"ExtMaxScriptMem;code:914;type:word;len:12;;" +
			"ExtAllowedGroups;code:915;type:wlist;len:32;opt:default;;" +
			"ExtEnabled;code:916;type:word;opt:default;len:12;;" +
			"ExtP4USER;code:917;type:word;opt:default;len:12;;" +
			"Name;code:906;type:line;opt:default;len:32;;" +
			"Owner;code:907;type:word;opt:default;len:36;;" +
			"Update;code:908;type:date;opt:always;fmt:L;len:20;;" +
			"Description;code:909;type:text;opt:required;len:128;;" +
			"ExtConfig;code:912;type:text;opt:required;len:256;;",
	},
	{
		Type:       "group",
		Definition: "Group;code:401;rq;ro;len:32;;" +
			"MaxResults;code:402;type:word;len:12;;" +
			"MaxScanRows;code:403;type:word;len:12;;" +
			"MaxLockTime;code:407;type:word;len:12;;" +
			"MaxOpenFiles;code:413;type:word;len:12;;" +
			"Timeout;code:406;type:word;len:12;;" +
			"PasswordTimeout;code:409;type:word;len:12;;" +
			"LdapConfig;code:410;type:line;len:128;;" +
			"LdapSearchQuery;code:411;type:line;len:128;;" +
			"LdapUserAttribute;code:412;type:line;len:128;;" +
			"LdapUserDNAttribute;code:414;type:line;len:128;;" +
			"Subgroups;code:404;type:wlist;len:32;opt:default;;" +
			"Owners;code:408;type:wlist;len:32;opt:default;;" +
			"Users;code:405;type:wlist;len:32;opt:default;;",
	},
	{
		Type:       "job",
		Definition: "Job;code:101;rq;len:32;;" +
			"Status;code:102;type:select;rq;len:10;" +
			"pre:open;val:open/suspended/closed;;" +
			"User;code:103;rq;len:32;pre:$user;;" +
			"Date;code:104;type:date;ro;len:20;pre:$now;;" +
			"Description;code:105;type:text;rq;pre:$blank;;",
	},
	{
		Type:       "label",
		Definition: "Label;code:301;rq;ro;fmt:L;len:32;;" +
			"Update;code:302;type:date;ro;fmt:L;len:20;;" +
			"Access;code:303;type:date;ro;fmt:L;len:20;;" +
			"Owner;code:304;fmt:R;len:32;;" +
			"Description;code:306;type:text;len:128;;" +
			"Options;code:309;type:line;len:64;val:" +
			"unlocked/locked,noautoreload/autoreload;;" +
			"Revision;code:312;type:word;words:1;len:64;;" +
			"ServerID;code:315;type:line;ro;len:64;;" +
			"View;code:311;type:wlist;len:64;;",
	},
	{
		Type:       "ldap",
		Definition: "Name;code:801;rq;len:32;;" +
			"Host;code:802;rq;type:word;words:1;len:128;;" +
			"Port;code:803;rq;type:word;words:1;len:5;;" +
			"Encryption;code:804;rq;len:10;val:" +
			"none/ssl/tls;;" +
			"BindMethod;code:805;rq;len:10;val:" +
			"simple/search/sasl;;" +
			"Options;code:816;type:line;len:64;val:" +
			"nodowncase/downcase,nogetattrs/getattrs," +
			"norealminusername/realminusername;;" +
			"SimplePattern;code:806;type:line;len:128;;" +
			"SearchBaseDN;code:807;type:line;len:128;;" +
			"SearchFilter;code:808;type:line;len:128;;" +
			"SearchScope;code:809;len:10;val:" +
			"baseonly/children/subtree;;" +
			"SearchBindDN;code:810;type:line;len:128;;" +
			"SearchPasswd;code:811;type:line;len:128;;" +
			"SaslRealm;code:812;type:word;words:1;len:128;;" +
			"GroupBaseDN;code:813;type:line;len:128;;" +
			"GroupSearchFilter;code:814;type:line;len:128;;" +
			"GroupSearchScope;code:815;len:10;val:" +
			"baseonly/children/subtree;;" +
			"AttributeUid;code:817;type:word;len:128;;" +
			"AttributeName;code:818;type:line;len:128;;" +
			"AttributeEmail;code:819;type:word;len:128;;",
	},
	{
		Type:       "license",
		Definition: "License;code:451;len:32;;" +
			"License-Expires;code:452;len:10;;" +
			"Support-Expires;code:453;len:10;;" +
			"Customer;code:454;type:line;len:128;;" +
			"Application;code:455;len:32;;" +
			"IPaddress;code:456;len:24;;" +
			"IPservice;code:461;type:wlist;len:24;;" +
			"Platform;code:457;len:32;;" +
			"Clients;code:458;len:8;;" +
			"Users;code:459;len:8;;" +
			"Files;code:460;len:8;;" +
			"Repos;code:462;len:8;;",
	},
	{
		Type:       "protect",
		Definition: "SubPath;code:502;ro;len:64;;" +
			"Update;code:503;type:date;ro;fmt:L;len:20;;" +
			"Protections;code:501;fmt:C;type:wlist;words:5;opt:default;z;len:64;;",
	},
	{
		Type:       "remote",
		Definition: "RemoteID;code:851;rq;ro;fmt:L;len:32;;" +
			"Address;code:852;rq;type:line;len:32;;" +
			"Owner;code:853;fmt:R;len:32;;" +
			"RemoteUser;code:861;fmt:R;len:32;;" +
			"Options;code:854;type:line;len:32;val:" +
			"unlocked/locked,nocompress/compress,copyrcs/nocopyrcs;;" +
			"Update;code:855;type:date;ro;fmt:L;len:20;;" +
			"Access;code:856;type:date;ro;fmt:L;len:20;;" +
			"Description;code:857;type:text;len:128;;" +
			"LastFetch;code:858;fmt:L;len:10;;" +
			"LastPush;code:859;fmt:L;len:10;;" +
			"DepotMap;code:860;type:wlist;words:2;len:64;;" +
			"ArchiveLimits;code:862;type:wlist;words:2;len:64;;",
	},
	{
		Type:       "repo",
		Definition: "Repo;code:1001;rq;ro;len:128;;" +
			"Owner;code:1002;len:32;;" +
			"Created;code:1003;type:date;ro;fmt:L;len:20;;" +
			"Pushed;code:1004;type:date;ro;fmt:L;len:20;;" +
			"ForkedFrom;code:1005;ro;len:128;;" +
			"Description;code:1006;type:text;len:128;;" +
			"DefaultBranch;code:1007;len:32;;" +
			"MirroredFrom;code:1008;len:32;;" +
			"Options;code:1009;type:select;len:10;val:lfs/nolfs;;",
	},
	{
		Type:       "server",
		Definition: "ServerID;code:751;rq;ro;len:32;;" +
			"Type;code:752;rq;len:32;;" +
			"Name;code:753;type:line;len:32;;" +
			"Address;code:754;type:line;len:32;;" +
			"ExternalAddress;code:755;type:line;len:32;;" +
			"Services;code:756;rq;len:128;;" +
			"Options;code:764;type:line;len:32;val:" +
			"nomandatory/mandatory;;" +
			"ReplicatingFrom;code:765;type:line;len:32;;" +
			"Description;code:757;type:text;len:128;;" +
			"User;code:761;type:line;len:64;;" +
			"AllowedAddresses;code:763;type:wlist;len:64;;" +
			"ClientDataFilter;code:758;type:wlist;len:64;;" +
			"RevisionDataFilter;code:759;type:wlist;len:64;;" +
			"ArchiveDataFilter;code:760;type:wlist;len:64;;" +
			"DistributedConfig;code:762;type:text;len:128;;",
	},
	{
		Type:       "spec",
		Definition: "Fields;code:351;type:wlist;words:5;rq;;" +
			"Words;code:352;type:wlist;words:2;;" +
			"Formats;code:353;type:wlist;words:3;;" +
			"Values;code:354;type:wlist;words:2;;" +
			"Presets;code:355;type:wlist;words:2;;" +
			"Openable;code:362;type:wlist;words:2;;" +
			"Comments;code:356;type:text;;",
	},
	{
		Type:       "stream",
		Definition: "Stream;code:701;rq;ro;len:64;;" +
			"Update;code:705;type:date;ro;fmt:L;len:20;;" +
			"Access;code:706;type:date;ro;fmt:L;len:20;;" +
			"Owner;code:704;len:32;open:isolate;;" +
			"Name;code:703;rq;type:line;len:32;open:isolate;;" +
			"Parent;code:702;rq;len:64;open:isolate;;" +
			"Type;code:708;rq;len:32;open:isolate;;" +
			"Description;code:709;type:text;len:128;open:isolate;;" +
			"Options;code:707;type:line;len:64;val:" +
			"allsubmit/ownersubmit,unlocked/locked," +
			"toparent/notoparent,fromparent/nofromparent," +
			"mergedown/mergeany;open:isolate;;" +
			"Paths;code:710;rq;type:wlist;words:2;maxwords:3;len:64;open:propagate;;" +
			"Remapped;code:711;type:wlist;words:2;len:64;open:propagate;;" +
			"Ignored;code:712;type:wlist;words:1;len:64;open:propagate;;" +
			"View;code:713;type:wlist;words:2;len:64;;" +
			"ChangeView;code:714;type:llist;ro;len:64;;",
	},
	{
		Type:       "triggers",
		Definition: "Triggers;code:551;type:wlist;words:4;len:64;opt:default;z;;",
	},
	{
		Type:       "typemap",
		Definition: "TypeMap;code:601;type:wlist;words:2;len:64;opt:default;z;;",
	},
	{
		Type:       "user",
		Definition: "User;code:651;rq;ro;seq:1;len:32;;" +
			"Type;code:659;ro;fmt:R;len:10;;" +
			"Email;code:652;fmt:R;rq;seq:3;len:32;;" +
			"Update;code:653;fmt:L;type:date;ro;seq:2;len:20;;" +
			"Access;code:654;fmt:L;type:date;ro;len:20;;" +
			"FullName;code:655;fmt:R;type:line;rq;len:32;;" +
			"JobView;code:656;type:line;len:64;;" +
			"Password;code:657;len:32;;" +
			"AuthMethod;code:662;fmt:L;len:10;val:" +
			"perforce/perforce+2fa/ldap/ldap+2fa;;" +
			"Reviews;code:658;type:wlist;len:64;;",
	},
}
